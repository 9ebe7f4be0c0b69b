package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/morosakubek2/sm-gsi-binary-rev-changer/patch"
)

type Context struct {
	editor *patch.Editor
}

var CLI struct {
	LogLevel int `optional help:"Higher values give more output."`

	Extract      ExtractCmd      `cmd help:"Show and export the SignerVer02 metadata of an image."`
	UpdateFile   UpdateFileCmd   `cmd name:"update-file" help:"Write a new SignerVer02 section and optionally rewrite the device model."`
	DetectModels DetectModelsCmd `cmd name:"detect-models" help:"List device model candidates found in an image."`
	Inspect      InspectCmd      `cmd help:"Hexdump the SignerVer02 section of an image."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.NamedMapper("hex", hexMapper{}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	c := &Context{
		editor: patch.New(patch.Config{
			LogFunc: func(level int, format string, param ...interface{}) {
				if level > CLI.LogLevel {
					return
				}
				str := fmt.Sprintf(format, param...)
				fmt.Printf("patch(%d): %s\n", level, str)
			},
		}),
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}
