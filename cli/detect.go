package main

import (
	"errors"
	"fmt"
	"os"
)

type DetectModelsCmd struct {
	Image          string `arg name:"image" help:"Image to scan."`
	PreferredModel string `optional name:"preferred-model" help:"Model to put first when present."`
}

func (l *DetectModelsCmd) Run(c *Context) error {
	data, err := os.ReadFile(l.Image)
	if err != nil {
		return err
	}

	models := c.editor.DetectModels(data, l.PreferredModel)
	if len(models) == 0 {
		return errors.New("No device models detected")
	}

	for _, m := range models {
		fmt.Println(m)
	}
	return nil
}
