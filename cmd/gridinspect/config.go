package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nullterm/gridbuf"
)

// config is the YAML-decoded script: grid dimensions plus an ordered list
// of operations to apply before printing the result.
type config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	History int    `yaml:"history"`
	Steps   []step `yaml:"steps"`
}

// step is one scripted operation. Exactly one field besides Row/Col should
// be set; which one determines what runSteps does with it.
type step struct {
	Write       string `yaml:"write"`
	Row         int    `yaml:"row"`
	Col         int    `yaml:"col"`
	ScrollLines int    `yaml:"scroll"`
	Resize      *struct {
		Width int `yaml:"width"`
	} `yaml:"resize"`
	Clear bool `yaml:"clear"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func runSteps(g *gridbuf.Grid, cursor *int, steps []step) error {
	for i, s := range steps {
		switch {
		case s.Write != "":
			cell := gridbuf.Cell{Fg: gridbuf.ColorDefault, Bg: gridbuf.ColorDefault}
			col := s.Col
			for _, r := range s.Write {
				g.SetCell(s.Row, col, gridbuf.Cell{
					Fg:    cell.Fg,
					Bg:    cell.Bg,
					Glyph: gridbuf.NewGlyph(r),
				})
				col += int(gridbuf.NewGlyph(r).Width)
			}
		case s.ScrollLines > 0:
			for n := 0; n < s.ScrollLines; n++ {
				g.ScrollHistory(gridbuf.ColorDefault)
			}
		case s.Resize != nil:
			g.Reflow(s.Resize.Width, cursor)
		case s.Clear:
			g.ClearLines(g.HSize(), g.SY(), gridbuf.ColorDefault)
		default:
			return fmt.Errorf("step %d: no recognized operation", i)
		}
	}
	return nil
}
