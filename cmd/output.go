package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/telegraph/config"
)

// dryRunRequest is what --dry-run prints instead of sending
type dryRunRequest struct {
	Method string            `json:"method"`
	Form   map[string]string `json:"form"`
}

func printDryRun(w io.Writer, method string, form url.Values) error {
	req := dryRunRequest{Method: method, Form: make(map[string]string, len(form))}
	for k := range form {
		req.Form[k] = form.Get(k)
	}
	return printOutput(w, req)
}

// printOutput writes v in the configured output format
func printOutput(w io.Writer, v any) error {
	format := config.FormatJSON
	if cfg != nil {
		format = cfg.Output.Format
	}
	return writeFormatted(w, format, v)
}

func writeFormatted(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if format == config.FormatYAML {
		data, err = jsonToYAML(data)
		if err != nil {
			return err
		}
	} else {
		data = append(data, '\n')
	}

	_, err = w.Write(data)
	return err
}

// jsonToYAML re-encodes JSON as block-style YAML, keeping key order
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to convert output to yaml: %w", err)
	}
	resetStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
