package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sshconfig "github.com/bigangswan/ssh-config"
	"github.com/bigangswan/ssh-config/sshconfigtest"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (a *App) newContractsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contracts",
		Short: "Run the resolver contract suite against every file system backend",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, titleStyle.Render("🔍 Resolver Contract Check"))

			backends, cleanup, err := contractBackends()
			if err != nil {
				return err
			}

			defer cleanup()

			matrix := runMatrix(backends)
			if failed := a.renderMatrix(backendNames(backends), matrix); failed > 0 {
				return fmt.Errorf("%d contract(s) failed", failed)
			}

			return nil
		},
	}
}

type backend struct {
	name string
	fs   afero.Fs
	root string
}

// contractBackends returns the file systems the suite is run against.
func contractBackends() ([]backend, func(), error) {
	dir, err := os.MkdirTemp("", "ssh-config-contracts-*")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	cleanup := func() { _ = os.RemoveAll(dir) }

	osRoot := filepath.ToSlash(filepath.Join(dir, "os"))
	baseDir := filepath.Join(dir, "base")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		cleanup()

		return nil, nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	return []backend{
		{name: "memory", fs: afero.NewMemMapFs(), root: "/contracts"},
		{name: "os", fs: afero.NewOsFs(), root: osRoot},
		{name: "basepath", fs: afero.NewBasePathFs(afero.NewOsFs(), baseDir), root: "/contracts"},
	}, cleanup, nil
}

func backendNames(backends []backend) []string {
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.name
	}

	return names
}

type testResult struct {
	passed bool
	errMsg string
}

// cliTester satisfies sshconfigtest.T outside of go test.
type cliTester struct {
	name   string
	failed bool
	errMsg string
}

func (c *cliTester) Errorf(f string, a ...any) {
	c.failed = true
	if c.errMsg == "" {
		c.errMsg = fmt.Sprintf(f, a...)
	}
}

func (c *cliTester) FailNow() {
	c.failed = true

	panic(failNow{})
}

func (c *cliTester) Name() string {
	return c.name
}

type failNow struct{}

func runMatrix(backends []backend) map[string]map[string]testResult {
	data := make(map[string]map[string]testResult)

	for _, b := range backends {
		for _, tc := range sshconfigtest.AllContracts() {
			row := data[tc.ID()]
			if row == nil {
				row = make(map[string]testResult)
				data[tc.ID()] = row
			}

			row[b.name] = executeContract(b, tc)
		}
	}

	return data
}

func executeContract(b backend, tc sshconfigtest.TestCase) testResult {
	t := &cliTester{name: tc.ID()}

	paths, err := sshconfigtest.Prepare(b.fs, b.root, tc)
	if err != nil {
		return testResult{errMsg: err.Error()}
	}

	runContractWithRecovery(t, tc, sshconfig.New(sshconfig.WithFs(b.fs)), paths)

	return testResult{passed: !t.failed, errMsg: t.errMsg}
}

func runContractWithRecovery(t *cliTester, tc sshconfigtest.TestCase, r *sshconfig.Resolver, p sshconfigtest.Paths) {
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(failNow); ok {
				return
			}

			panic(rec)
		}
	}()

	tc.Run(t, r, p)
}

// renderMatrix prints one row per contract and returns the number of failed
// cells.
func (a *App) renderMatrix(names []string, matrix map[string]map[string]testResult) int {
	const colWidth = 10

	nameWidth := len("CONTRACT")
	for _, tc := range sshconfigtest.AllContracts() {
		nameWidth = max(nameWidth, len(tc.Name))
	}

	var header strings.Builder

	header.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", nameWidth, "CONTRACT")))

	for _, n := range names {
		header.WriteString(" ")
		header.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", colWidth, strings.ToUpper(n))))
	}

	fmt.Fprintln(a.out, "\n"+header.String())

	var (
		currentCat string
		issues     []string
	)

	for _, tc := range sshconfigtest.AllContracts() {
		if tc.Category != currentCat {
			currentCat = tc.Category
			fmt.Fprintln(a.out, catStyle.Render(strings.ToUpper(currentCat)))
		}

		var line strings.Builder

		line.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", nameWidth, tc.Name)))

		for _, n := range names {
			res := matrix[tc.ID()][n]

			cell := passedStyle.Render(fmt.Sprintf("%-*s", colWidth, "PASS"))
			if !res.passed {
				cell = failedStyle.Render(fmt.Sprintf("%-*s", colWidth, "FAIL"))
				issues = append(issues, fmt.Sprintf("[%s] %s: %s", n, tc.ID(), res.errMsg))
			}

			line.WriteString(" ")
			line.WriteString(cell)
		}

		fmt.Fprintln(a.out, line.String())
	}

	if len(issues) > 0 {
		fmt.Fprintln(a.out, errorStyle.Render("\n❌ Issue Details:"))

		for _, issue := range issues {
			fmt.Fprintf(a.out, "  - %s\n", issue)
		}

		return len(issues)
	}

	fmt.Fprintln(a.out, checkStyle.Render("\n✅ All file systems are in parity!"))

	return 0
}
