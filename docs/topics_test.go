package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced block kinds executed by TestCodeBlocks. A setup starts a new
// scenario in a fresh folder, the output of a run is compared to the next
// console check, a check must succeed.
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

// TestTopics checks that readme.md lists exactly the topic files.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("readme.md lists %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}

	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(nope) succeeded, want an error")
	}
	every, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(every, content) {
			t.Errorf("GetTopics(*) misses %q", topic)
		}
	}
}

// TestCodeBlocks runs the scenarios of the documentation against the real binary.
func TestCodeBlocks(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash is required to run the documentation scenarios")
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := buildInvoicify(t)
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, bin, file)
		})
	}
}

// Block is a fenced code block of a markdown file.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// buildInvoicify builds the invoicify executable in a temporary directory and
// returns its path.
func buildInvoicify(t *testing.T) string {
	t.Helper()
	output := filepath.Join(t.TempDir(), "invoicify")
	if out, err := exec.Command("go", "build", "-o", output, "../invoicify/").CombinedOutput(); err != nil {
		t.Fatalf("failed to build invoicify: %v\n%s", err, out)
	}
	return output
}

// parseMarkdown returns the executable blocks of a markdown file.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))
		switch lang {
		case bashCheck, bashSetup, bashRun, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			body.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Type:    lang,
			Content: body.String(),
			File:    file,
			Line:    bytes.Count(content[:fcb.Info.Segment.Start], []byte{'\n'}) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// blockRunner holds the state of a scenario.
type blockRunner struct {
	env            []string
	previousOutput string
	dir            string
}

func (r *blockRunner) runBlock(t *testing.T, block *Block) {
	t.Helper()

	if block.Type == consoleCheck {
		want := strings.TrimSpace(block.Content)
		got := strings.TrimSpace(r.previousOutput)
		got = strings.ReplaceAll(got, "\t", "        ")
		if want != got {
			t.Errorf("%s:%d: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q\n", block.File, block.Line, got, want, got, want)
		}
		return
	}
	if block.Type == bashSetup {
		r.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+block.Content)
	cmd.Dir = r.dir
	cmd.Env = r.env
	output, err := cmd.CombinedOutput()
	if block.Type == bashRun {
		r.previousOutput = string(output)
	}
	if err == nil {
		return
	}
	switch block.Type {
	case bashCheck:
		t.Errorf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
	default:
		t.Fatalf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
	}
}

// runBlocks executes the scenarios of a markdown file, with a fixed today and
// an invoice saved in the scenario folder.
func runBlocks(t *testing.T, bin, file string) {
	t.Helper()

	blocks := parseMarkdown(t, file)
	if len(blocks) == 0 {
		return
	}
	r := blockRunner{
		env: append(os.Environ(),
			fmt.Sprintf("PATH=%s%c%s", filepath.Dir(bin), os.PathListSeparator, os.Getenv("PATH")),
			"XDG_CONFIG_HOME="+t.TempDir(),
			"XDG_DATA_HOME="+t.TempDir(),
			"INVOICIFY_STORAGE_DIR=.invoicify",
			"INVOICIFY_TESTING_TODAY=2025-01-15",
		),
		dir: t.TempDir(),
	}
	for _, block := range blocks {
		r.runBlock(t, block)
	}
}
