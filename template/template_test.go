package template_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/template"
)

type recorder struct{ steps []string }

func (r *recorder) Initialize(io.Writer) { r.steps = append(r.steps, "init") }
func (r *recorder) Start(io.Writer)      { r.steps = append(r.steps, "start") }
func (r *recorder) End(io.Writer)        { r.steps = append(r.steps, "end") }

func TestPlay_StepOrder(t *testing.T) {
	r := &recorder{}
	template.Play(io.Discard, r)
	assert.Equal(t, []string{"init", "start", "end"}, r.steps)
}

func TestPlay_ScoreHook(t *testing.T) {
	var buf bytes.Buffer
	template.Play(&buf, template.Mario{})
	assert.NotContains(t, buf.String(), "Final score")

	buf.Reset()
	template.Play(&buf, &template.Tetris{Lines: 4})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Final score: 400", lines[len(lines)-1])
}
