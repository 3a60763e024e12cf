package demo

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// Result 单个场景的结果
type Result struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Got  int    `json:"got"`
	OK   bool   `json:"ok"`
}

// Report 一次 Run 的汇总
type Report struct {
	Input   int      `json:"input"`
	Want    int      `json:"want"`
	Passed  int      `json:"passed"`
	Results []Result `json:"results"`
}

// WriteText 每个场景一行
func (r Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		status := "ok"
		if !res.OK {
			status = "FAIL"
		}
		if _, err := fmt.Fprintf(w, "%-4s %-16s f(%d) = %d  %s\n", status, res.Kind, r.Input, res.Got, res.Name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d/%d passed\n", r.Passed, len(r.Results))
	return err
}

// WriteJSON 用 sonic 序列化整个报告
func (r Report) WriteJSON(w io.Writer) error {
	b, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// Write 按 format 输出，format 只能是 text 或 json
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "text", "":
		return r.WriteText(w)
	case "json":
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
