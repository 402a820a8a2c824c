package cli

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// run executes the command tree with args and returns stdout, stderr and the error.
func run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

// writeFile writes content into a fresh temp dir and returns its path.
func writeFile(name, content string) string {
	path := filepath.Join(GinkgoT().TempDir(), name)
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

	return path
}

var _ = Describe("vector commands", func() {
	It("should print the dot product", func() {
		out, _, err := run("dot", "--a", "1,2,3", "--b", "4,5,6")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("32\n"))
	})

	It("should reject vectors of different length", func() {
		_, _, err := run("dot", "--a", "1,2,3", "--b", "4,5")
		Expect(err).To(MatchError(vector.ErrDimensionMismatch))
	})

	It("should print the euclidean norm by default", func() {
		out, _, err := run("norm", "--a", "3,4")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("5\n"))
	})

	It("should reject a non-positive order", func() {
		_, _, err := run("norm", "--a", "3,4", "--order", "0")
		Expect(err).To(MatchError(vector.ErrInvalidNormOrder))
	})

	It("should normalize to unit length", func() {
		out, _, err := run("normalize", "--a", "1,1,1,1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("0.5 0.5 0.5 0.5\n"))
	})

	It("should add and scale single-row operands as vectors", func() {
		out, _, err := run("add", "--a", "1,2", "--b", "3,4")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("4 6\n"))

		out, _, err = run("scale", "--scalar", "2", "--a=1,-2")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("2 -4\n"))
	})

	It("should fail when an operand is missing", func() {
		_, _, err := run("dot", "--a", "1,2")
		Expect(err).To(MatchError(ErrMissingOperand))
	})
})

var _ = Describe("matrix commands", func() {
	It("should multiply matrices given as flags", func() {
		out, _, err := run("mul", "--a", "1,2;3,4", "--b", "5,6;7,8")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("19 22\n43 50\n"))
	})

	It("should subtract matrices", func() {
		out, _, err := run("sub", "--a", "1,2;3,4", "--b", "1,1;1,1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("0 1\n2 3\n"))
	})

	It("should report non-conformable products", func() {
		_, _, err := run("mul", "--a", "1,2,3;4,5,6", "--b", "1,2;3,4")
		Expect(err).To(MatchError(matrix.ErrDimensionMismatch))
	})

	It("should reject ragged rows", func() {
		_, _, err := run("add", "--a", "1,2;3", "--b", "1,1;1,1")
		Expect(err).To(MatchError(matrix.ErrDimensionMismatch))
	})

	It("should render with gonum's formatter when pretty is set", func() {
		out, _, err := run("mul", "--a", "1,0;0,1", "--b", "5,6;7,8", "--pretty")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("⎡"))
		Expect(out).To(ContainSubstring("⎣"))
	})
})

var _ = Describe("operand files", func() {
	It("should read matrices from YAML", func() {
		path := writeFile("ops.yaml", `
a: {rows: 2, cols: 2, values: [1, 2, 3, 4]}
b: {rows: 2, cols: 2, values: [10, 20, 30, 40]}
`)
		out, _, err := run("add", "--file", path)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("11 22\n33 44\n"))
	})

	It("should let flags override file operands", func() {
		path := writeFile("ops.yaml", "a: {values: [1, 2]}\nb: {values: [3, 4]}\n")
		out, _, err := run("dot", "--file", path, "--b", "1,1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("3\n"))
	})

	It("should reject unknown keys", func() {
		path := writeFile("ops.yaml", "a: {values: [1]}\nc: {values: [2]}\n")
		_, _, err := run("norm", "--file", path)
		Expect(err).To(HaveOccurred())
	})

	It("should reject a short values list", func() {
		path := writeFile("ops.yaml", "a: {rows: 2, cols: 2, values: [1, 2, 3]}\nb: {rows: 2, cols: 2, values: [1, 2, 3, 4]}\n")
		_, _, err := run("add", "--file", path)
		Expect(err).To(MatchError(matrix.ErrDimensionMismatch))
	})
})

var _ = Describe("configuration", func() {
	It("should honor LINALG_PRECISION", func() {
		GinkgoT().Setenv("LINALG_PRECISION", "2")
		out, _, err := run("norm", "--a", "3,4")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("5.00\n"))
	})

	It("should read a config file and let flags win", func() {
		cfg := writeFile("linalg.yaml", "precision: 1\n")
		out, _, err := run("normalize", "--config", cfg, "--a", "2,0")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("1.0 0.0\n"))

		out, _, err = run("normalize", "--config", cfg, "--precision", "3", "--a", "2,0")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("1.000 0.000\n"))
	})

	It("should reject precision below -1", func() {
		_, _, err := run("norm", "--a", "1", "--precision=-2")
		Expect(err).To(HaveOccurred())
	})

	It("should log JSON to stderr", func() {
		_, errOut, err := run("dot", "--a", "1", "--b", "2")
		Expect(err).NotTo(HaveOccurred())
		Expect(errOut).To(ContainSubstring(`"msg":"operation completed"`))
		Expect(errOut).To(ContainSubstring(`"op":"dot"`))
	})

	It("should reject an unknown log level", func() {
		_, _, err := run("dot", "--a", "1", "--b", "2", "--log-level", "loud")
		Expect(err).To(HaveOccurred())
	})
})
