package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// result describes one published document.
type result struct {
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Key    string `json:"key" yaml:"key"`
	URL    string `json:"url" yaml:"url"`
	Raw    string `json:"raw" yaml:"raw"`
}

// link is what text output and --copy use for r.
func (r result) link(raw bool) string {
	if raw {
		return r.Raw
	}
	return r.URL
}

func printResults(w io.Writer, format string, raw bool, results []result) error {
	switch format {
	case "", "text":
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.link(raw)); err != nil {
				return err
			}
		}
		return nil
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(results); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
