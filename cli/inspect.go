package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/inancgumus/screen"
	"github.com/morosakubek2/sm-gsi-binary-rev-changer/signer"
)

type InspectCmd struct {
	Image  string `arg name:"image" help:"Image to inspect."`
	Offset int    `optional type:"hex" default:"-1" help:"Hex offset to dump, the signer section is located when omitted."`
	Length int    `optional default:"128" help:"Number of bytes to dump."`
	Loop   int    `optional help:"0=Dump once, 1=Mark changes since start, 2=Mark changes since previous iteration."`
}

func (l *InspectCmd) Run(c *Context) error {
	if l.Loop < 0 || l.Loop > 2 {
		return errors.New("Loop flag out of range")
	}
	if l.Length <= 0 {
		return errors.New("Length must be positive")
	}

	var oldBuf []byte
	var mark []bool
	for {
		startTime := time.Now()

		/* The file is re-read on every iteration, loop mode shows another
		   tool rewriting it. */
		data, err := os.ReadFile(l.Image)
		if err != nil {
			return err
		}

		pos := l.Offset
		if pos < 0 {
			pos, err = signer.Locate(data)
			if err != nil {
				return err
			}
		}
		if pos >= len(data) {
			return fmt.Errorf("Offset 0x%X is past the end of %s (%d bytes)", pos, l.Image, len(data))
		}

		window := data[pos:]
		if len(window) > l.Length {
			window = window[:l.Length]
		}

		if mark == nil || l.Loop == 2 || len(mark) != len(window) {
			mark = make([]bool, len(window))
		}

		if l.Loop != 0 {
			screen.Clear()
			screen.MoveTopLeft()
			if oldBuf != nil {
				for i, m := range oldBuf {
					if i < len(window) && m != window[i] {
						mark[i] = true
					}
				}
			}
		}

		fmt.Println(hexdump(pos, window, mark))
		if len(window) == signer.SectionSize {
			fmt.Printf("Section CRC16: %04X\n", signer.Sum(window))
		}

		oldBuf = window

		if l.Loop == 0 {
			break
		}
		d := time.Now().Sub(startTime)
		td := 200 * time.Millisecond
		if d < td {
			time.Sleep(td - d)
		}
	}

	return nil
}
