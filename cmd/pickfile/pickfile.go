package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/skratchdot/open-golang/open"

	"filechooser.app/filechooser"
	"filechooser.app/filechooser/desktop"
)

var (
	titleArg = flag.String("title", "", "Dialog window title.")
	dirArg   = flag.String("dir", "", "Directory the dialog starts in.")
	mimeArg  = flag.String("mime", "", "MIME pattern to filter by, e.g. image/*.")
	savePtr  = flag.Bool("save", false, "Pick a destination to save to instead of a file to open.")
	nodotPtr = flag.Bool("nodot", false, "Hide dotfiles.")
	openPtr  = flag.Bool("open", false, "Open the chosen file with the default application.")
	debugPtr = flag.Bool("debug", false, "Print debug logs.")
)

func main() {
	flag.Parse()

	cfg := &filechooser.Config{
		Title:      *titleArg,
		Directory:  *dirArg,
		MimeFilter: *mimeArg,
	}

	if *savePtr {
		cfg.Intent = filechooser.IntentSave
	}

	if *nodotPtr {
		cfg.NameFilter = func(dir, name string) bool {
			return !strings.HasPrefix(name, ".")
		}
	}

	var opts []desktop.Option
	if *debugPtr {
		opts = append(opts, desktop.WithLogOutput(os.Stderr))
	}

	chooser := desktop.New(opts...)

	err := chooser.ChooseFile(cfg, filechooser.CallbackFuncs{
		Chosen: func(file *filechooser.FileHandle) {
			fmt.Println(file.Path())
			if *openPtr {
				check(open.Run(file.Path()))
			}
		},
		Cancelled: func() {
			fmt.Fprintln(os.Stderr, "No file selected.")
			os.Exit(1)
		},
	})
	check(err)
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}
