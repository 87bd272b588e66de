package tui

import (
	"bytes"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitaminmoo/hexd/internal/hexdump"
)

// LoadModel renders the dump of src into a pager model.
func LoadModel(name string, size int64, src io.Reader) (Model, error) {
	var buf bytes.Buffer
	d := hexdump.New(&buf)
	if err := d.Dump(src); err != nil {
		return Model{}, err
	}
	return NewModel(name, size, d.Stats().Rows, buf.String()), nil
}

// Run renders the dump of src and opens it in the pager on out. Extra
// options are applied after the defaults.
func Run(name string, size int64, src io.Reader, out io.Writer, opts ...tea.ProgramOption) error {
	m, err := LoadModel(name, size, src)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(out)}, opts...)
	p := tea.NewProgram(m, opts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run pager: %w", err)
	}

	return nil
}
