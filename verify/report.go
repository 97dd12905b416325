package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/duet/duet"
	"github.com/sarchlab/duet/instr"
)

// RenderResult writes one row per machine and the answer of a pair run.
func RenderResult(w io.Writer, res duet.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Pair Result")

	t.AppendHeader(table.Row{"Machine", "State", "Sent", "Received"})
	for i := range res.States {
		t.AppendRow(table.Row{i, res.States[i], res.Sent[i], res.Received[i]})
	}

	t.AppendFooter(table.Row{"Answer", res.Answer(), "Deadlocked", res.Deadlocked})
	t.Render()
}

// RenderRegisters writes the registers that are non-zero in any of the
// given register files, one column per file.
func RenderRegisters(w io.Writer, files ...instr.Registers) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Registers")

	header := table.Row{"Reg"}
	for i := range files {
		header = append(header, fmt.Sprintf("M%d", i))
	}
	t.AppendHeader(header)

	for r := instr.Register(0); r < instr.NumRegisters; r++ {
		if !anyNonZero(files, r) {
			continue
		}

		row := table.Row{r.String()}
		for _, regs := range files {
			row = append(row, regs[r])
		}
		t.AppendRow(row)
	}

	t.Render()
}

func anyNonZero(files []instr.Registers, r instr.Register) bool {
	for _, regs := range files {
		if regs[r] != 0 {
			return true
		}
	}

	return false
}

// RenderIssues writes lint issues as a table, or a single line when there
// are none.
func RenderIssues(w io.Writer, issues []Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Lint Issues (%d)", len(issues)))

	t.AppendHeader(table.Row{"Type", "PC", "Message"})
	for _, issue := range issues {
		pc := "-"
		if issue.PC >= 0 {
			pc = fmt.Sprint(issue.PC)
		}
		t.AppendRow(table.Row{issue.Type, pc, issue.Message})
	}

	t.Render()
}

// SaveIssuesToFile writes the lint table to a file.
func SaveIssuesToFile(filename string, issues []Issue) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	RenderIssues(file, issues)

	return nil
}
