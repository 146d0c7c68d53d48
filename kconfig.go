package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var ErrStale = errors.New("kconfig out of date")

// Each descriptor gets a choice between all pins, plus two computed int
// entries mapping the selected option back to its GPIO and RTC numbers.
const kconfigFile = `
# ============================== #
#      WARNING. DO NOT EDIT      #
#								 #
#  Automatically generated file  #
# {{ center 30 (print "See " .Generator) }} #
#								 #
# ============================== #


{{range $d := .Descriptor}}
choice {{$d.Name}}_IO
	prompt "{{ quote $d.Prompt }}"
	default {{$d.Name}}_IO_{{$d.Default}}
	help
		{{ help $d.Help }}
{{range $.Pin}}
	config {{$d.Name}}_IO_{{.GPIO}}
		bool "GPIO {{.GPIO}} / RTC {{.RTC}}"
{{end}}
endchoice


config {{$d.Name}}_GPIO
	int
{{range $.Pin}}	default {{.GPIO}} if {{$d.Name}}_IO_{{.GPIO}}
{{end}}

config {{$d.Name}}_RTC
	int
{{range $.Pin}}	default {{.RTC}} if {{$d.Name}}_IO_{{.GPIO}}
{{end}}
{{end}}`

var kconfigTmpl = template.Must(template.New("kconfig").Funcs(template.FuncMap{
	"center": center,
	"quote":  quote,
	"help":   helpText,
}).Parse(kconfigFile))

// center pads s with spaces on both sides to width runes, the extra space
// going to the right.
func center(width int, s string) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string { return quoteReplacer.Replace(s) }

// help text continues for as long as lines stay indented
func helpText(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n\t\t")
}

func render(w io.Writer, c Config) error {
	return errors.Wrap(kconfigTmpl.Execute(w, c), "render kconfig")
}

func renderBytes(c Config) ([]byte, error) {
	var buf bytes.Buffer
	err := render(&buf, c)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// generate overwrites path with the rendered Kconfig fragment.
func generate(path string, c Config) error {
	data, err := renderBytes(c)
	if err != nil {
		return err
	}

	os.MkdirAll(filepath.Dir(path), 0755)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "open output")
	}
	defer dst.Close()

	_, err = dst.Write(data)
	if err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(dst.Close(), "close %s", path)
}

// check reports ErrStale if path does not hold exactly what generate would
// write.
func check(path string, c Config) error {
	want, err := renderBytes(c)
	if err != nil {
		return err
	}
	got, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return errors.Wrapf(ErrStale, "%s does not exist", path)
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if !bytes.Equal(got, want) {
		return errors.Wrapf(ErrStale, "%s differs from generated output", path)
	}
	return nil
}
