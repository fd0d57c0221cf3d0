package cli

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose"
	"github.com/rminderhoud/Revise/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
	}
	InteractiveCmd struct{}
	ConvertCmd     struct {
		From   string `arg:"required" help:"path to source file" placeholder:"list_string.stl"`
		To     string `arg:"required" help:"path to destination file" placeholder:"out.json"`
		Format string `help:"source format when sniffing guesses wrong: table, script, or json"`
		Force  bool   `help:"overwrite the destination file"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Welcome, Visitor, to the seven planets.\n",
			"A CLI utility to convert ROSE Online's binary data files (string tables",
			"and AI scripts) to editable JSON and back.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func StartInteractive() {
	if err := ui.Start(); err != nil {
		println("Error happened running the file picker: " + err.Error())
	}
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func Convert(bs []byte, format string) ([]byte, error) {
	switch format {
	case "":
		return rose.Convert(bs)
	case "table":
		return rose.DecodeTable(bs)
	case "script":
		return rose.DecodeScript(bs)
	case "json":
		return rose.EncodeDocument(bs)
	}
	return nil, errors.Errorf(
		`Convert error: unrecognized format "%s" (expected "table", "script", or "json")`,
		format,
	)
}

func StartConverting(from string, to string, format string, force bool) {
	if !CheckExistence(from) {
		println("Source file does not exist!")
		return
	}
	if CheckExistence(to) && !force {
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		println("Explicit --force is needed to make sure that you paid attention not to overwriting a data file your game still needs.")
		return
	}
	fileBytes, err := ioutil.ReadFile(from)
	if err != nil {
		println("Error happened reading file at: " + from)
		return
	}
	resultBytes, err := Convert(fileBytes, format)
	if err != nil {
		println("Error happened converting: " + err.Error())
		return
	}
	if err := ioutil.WriteFile(to, resultBytes, 0644); err != nil {
		println("Error happened writing to file at: " + to)
		return
	}
	println("Done converting. Please check your result file at: " + to)
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if args.Convert != nil {
		StartConverting(
			args.Convert.From,
			args.Convert.To,
			args.Convert.Format,
			args.Convert.Force,
		)
	} else {
		StartInteractive()
	}
}
