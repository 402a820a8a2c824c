package cli

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/linalg/matrix"
)

var _ = Describe("parseOperand", func() {
	DescribeTable("shapes",
		func(in string, rows, cols int, vals []float64) {
			op, err := parseOperand(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(op.Rows).To(Equal(rows))
			Expect(op.Cols).To(Equal(cols))
			Expect(op.Values).To(Equal(vals))
		},
		Entry("row vector", "1,2,3", 1, 3, []float64{1, 2, 3}),
		Entry("matrix", "1,2;3,4", 2, 2, []float64{1, 2, 3, 4}),
		Entry("column", "1;2;3", 3, 1, []float64{1, 2, 3}),
		Entry("decimals and signs", "-1.5, 0.25", 1, 2, []float64{-1.5, 0.25}),
	)

	It("should reject non-numeric cells", func() {
		_, err := parseOperand("1,x")
		Expect(err).To(HaveOccurred())
	})

	It("should derive the column count for files without cols", func() {
		op := &Operand{Rows: 2, Values: []float64{1, 2, 3, 4, 5, 6}}
		m, err := op.matrix()
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Cols()).To(Equal(3))

		_, err = (&Operand{Rows: 3, Cols: 3, Values: []float64{1}}).matrix()
		Expect(err).To(MatchError(matrix.ErrDimensionMismatch))
	})
})
