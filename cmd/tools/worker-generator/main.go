// cmd/tools/worker-generator/main.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"saas-benchmarks/pkg/registry"
)

// Field is one generated struct field.
type Field struct {
	GoName      string
	GoType      string
	JSONName    string
	Description string
	Required    bool
	Check       string
}

// WorkerData feeds the scaffold templates.
type WorkerData struct {
	ID          string
	Name        string
	PackageName string
	TaskType    string
	Category    string
	TimeoutExpr string
	Input       []Field
	Output      []Field
	HasRequired bool
}

var scaffold = []struct {
	file string
	tmpl string
}{
	{"config.go", configTemplate},
	{"models.go", modelsTemplate},
	{"handler.go", handlerTemplate},
	{"handler_test.go", testTemplate},
}

func main() {
	activity := flag.String("activity", "", "Activity ID from the registry (e.g., project-cohort-curves)")
	outputDir := flag.String("output", "internal/workers", "Root directory for generated workers")
	registryPath := flag.String("registry", "configs/activity-registry.json", "Path to the activity registry JSON file")
	force := flag.Bool("force", false, "Overwrite an existing worker directory")
	flag.Parse()

	if *activity == "" {
		fmt.Println("Usage: worker-generator -activity <id> [-output <dir>] [-registry <path>] [-force]")
		os.Exit(1)
	}

	reg, err := registry.LoadRegistry(*registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading registry from %s: %v\n", *registryPath, err)
		os.Exit(1)
	}
	a, ok := reg.Find(*activity)
	if !ok {
		fmt.Fprintf(os.Stderr, "Activity %q not found in %s\n", *activity, *registryPath)
		os.Exit(1)
	}

	files, err := generate(*a, *outputDir, *force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Printf("Generated %s\n", f)
	}
	fmt.Printf("\nNext: implement execute, then register %s in cmd/worker-manager/main.go\n", a.TaskType)
}

// generate writes the worker scaffold for a under root/<category>/<id> and
// returns the written paths. Every Go file is run through go/format.
func generate(a registry.Activity, root string, force bool) ([]string, error) {
	if a.Category == "" {
		return nil, fmt.Errorf("activity %s has no category", a.ID)
	}
	dir := filepath.Join(root, a.Category, a.ID)
	if _, err := os.Stat(filepath.Join(dir, "handler.go")); err == nil && !force {
		return nil, fmt.Errorf("%s already has a handler, use -force to overwrite", dir)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	data := workerData(a)
	var written []string
	for _, s := range scaffold {
		tmpl, err := template.New(s.file).Parse(s.tmpl)
		if err != nil {
			return written, fmt.Errorf("parse template %s: %w", s.file, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return written, fmt.Errorf("render %s: %w", s.file, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return written, fmt.Errorf("format %s: %w", s.file, err)
		}

		path := filepath.Join(dir, s.file)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func workerData(a registry.Activity) WorkerData {
	taskType := a.TaskType
	if taskType == "" {
		taskType = a.ID
	}
	d := WorkerData{
		ID:          a.ID,
		Name:        a.DisplayName,
		PackageName: strings.ReplaceAll(a.ID, "-", ""),
		TaskType:    taskType,
		Category:    a.Category,
		TimeoutExpr: timeoutExpr(a.Timeout),
		Input:       fields(a.InputSchema),
		Output:      fields(a.OutputSchema),
	}
	for _, f := range d.Input {
		if f.Check != "" {
			d.HasRequired = true
		}
	}
	return d
}

func timeoutExpr(s string) string {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return "10 * time.Second"
	}
	if d%time.Second == 0 {
		return fmt.Sprintf("%d * time.Second", d/time.Second)
	}
	return fmt.Sprintf("%d * time.Millisecond", d/time.Millisecond)
}

// fields turns the top-level properties of a JSON schema into struct
// fields, sorted by name so output is stable.
func fields(schema map[string]interface{}) []Field {
	props, _ := schema["properties"].(map[string]interface{})
	required := make(map[string]bool)
	if req, ok := schema["required"].([]interface{}); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				required[s] = true
			}
		}
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Field, 0, len(names))
	for _, name := range names {
		p, ok := props[name].(map[string]interface{})
		if !ok {
			continue
		}
		f := Field{
			GoName:   exportedName(name),
			GoType:   goType(p),
			JSONName: name,
			Required: required[name],
		}
		if desc, ok := p["description"].(string); ok {
			f.Description = strings.Join(strings.Fields(desc), " ")
		}
		if f.Required {
			switch {
			case f.GoType == "string":
				f.Check = fmt.Sprintf("input.%s == \"\"", f.GoName)
			case strings.HasPrefix(f.GoType, "map[") || strings.HasPrefix(f.GoType, "[]"):
				f.Check = fmt.Sprintf("input.%s == nil", f.GoName)
			}
		}
		out = append(out, f)
	}
	return out
}

func goType(p map[string]interface{}) string {
	t, _ := p["type"].(string)
	switch t {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]interface{}"
	case "array":
		if items, ok := p["items"].(map[string]interface{}); ok {
			if it := goType(items); it != "interface{}" {
				return "[]" + it
			}
		}
		return "[]interface{}"
	default:
		return "interface{}"
	}
}

// exportedName upper-cases the first letter and any letter after a dash or
// underscore, so "report_id" and "reportId" both become "ReportId".
func exportedName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
