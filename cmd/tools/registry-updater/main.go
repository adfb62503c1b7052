// cmd/tools/registry-updater/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"saas-benchmarks/internal/common/config"
	"saas-benchmarks/internal/common/validation"
	"saas-benchmarks/pkg/registry"
)

const defaultRegistryPath = "configs/activity-registry.json"

func main() {
	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		path := fs.String("path", defaultRegistryPath, "Path to registry file")
		id := fs.String("id", "", "Activity ID (e.g., project-scenarios)")
		displayName := fs.String("displayName", "", "Display Name (e.g., Project Scenarios)")
		description := fs.String("description", "", "Description")
		category := fs.String("category", "", "Category (e.g., planning)")
		taskType := fs.String("taskType", "", "Zeebe task type, defaults to the ID")
		version := fs.String("version", "1.0.0", "Version")
		status := fs.String("status", "planned", "Implementation status (planned, in-progress, completed, verified)")
		timeout := fs.String("timeout", "10s", "Job timeout")
		_ = fs.Parse(args)

		if *id == "" || *displayName == "" || *category == "" {
			fs.Usage()
			return errors.New("id, displayName and category are required for add")
		}
		if *taskType == "" {
			*taskType = *id
		}
		a := registry.Activity{
			ID:                   *id,
			DisplayName:          *displayName,
			Description:          *description,
			Category:             *category,
			Version:              *version,
			TaskType:             *taskType,
			ImplementationStatus: *status,
			InputSchema:          map[string]interface{}{"type": "object"},
			OutputSchema:         map[string]interface{}{"type": "object"},
			ErrorCodes:           []string{"PARSE_ERROR", "INVALID_INPUT", "INTERNAL_ERROR"},
			Timeout:              *timeout,
			Workflows:            []string{},
			Tags:                 []string{*category},
		}
		if err := addActivity(*path, a); err != nil {
			return err
		}
		fmt.Fprintf(out, "Added activity: %s\n", *id)

	case "update":
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		path := fs.String("path", defaultRegistryPath, "Path to registry file")
		id := fs.String("id", "", "Activity ID to update")
		field := fs.String("field", "", "Field to update (status, version, timeout, retries, ...)")
		value := fs.String("value", "", "New value for the field")
		_ = fs.Parse(args)

		if *id == "" || *field == "" || *value == "" {
			fs.Usage()
			return errors.New("id, field and value are required for update")
		}
		if err := updateActivity(*path, *id, *field, *value); err != nil {
			return err
		}
		fmt.Fprintf(out, "Updated activity %s, field %s to %s\n", *id, *field, *value)

	case "validate":
		fs := flag.NewFlagSet("validate", flag.ExitOnError)
		path := fs.String("path", defaultRegistryPath, "Path to registry file")
		_ = fs.Parse(args)

		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		if err := validateRegistry(reg); err != nil {
			return fmt.Errorf("registry validation failed: %w", err)
		}
		fmt.Fprintf(out, "Registry validation passed. Found %d activities.\n", len(reg.Activities))

	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		path := fs.String("path", defaultRegistryPath, "Path to registry file")
		_ = fs.Parse(args)

		reg, err := registry.LoadRegistry(*path)
		if err != nil {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		for _, a := range reg.Activities {
			fmt.Fprintf(out, "%-30s %-15s %-12s %s\n", a.TaskType, a.Category, a.ImplementationStatus, a.Timeout)
		}

	case "help", "-h", "--help":
		help()

	default:
		help()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func addActivity(path string, a registry.Activity) error {
	reg, err := registry.LoadRegistry(path)
	if errors.Is(err, os.ErrNotExist) {
		reg = &registry.ActivityRegistry{Version: "1.0.0", Activities: []registry.Activity{}}
	} else if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if err := reg.Add(a); err != nil {
		return err
	}
	return reg.Save(path)
}

func updateActivity(path, id, field, value string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	for i := range reg.Activities {
		if reg.Activities[i].ID != id {
			continue
		}
		if err := setField(&reg.Activities[i], field, value); err != nil {
			return err
		}
		return reg.Save(path)
	}
	return fmt.Errorf("activity with ID %s not found", id)
}

func setField(a *registry.Activity, field, value string) error {
	switch field {
	case "status":
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "displayName":
		a.DisplayName = value
	case "description":
		a.Description = value
	case "category":
		a.Category = value
	case "taskType":
		a.TaskType = value
	case "timeout":
		a.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value: %w", err)
		}
		a.Retries = retries
	case "errorCodes":
		a.ErrorCodes = strings.Split(value, ",")
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
	return nil
}

// validateRegistry checks required fields, compiles every input schema and
// makes sure each task type the worker manager registers is described.
func validateRegistry(reg *registry.ActivityRegistry) error {
	if len(reg.Activities) == 0 {
		return errors.New("registry contains no activities")
	}

	ids := make(map[string]bool)
	for _, a := range reg.Activities {
		if a.ID == "" {
			return errors.New("activity missing required field: ID")
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate activity ID: %s", a.ID)
		}
		ids[a.ID] = true

		if a.DisplayName == "" {
			return fmt.Errorf("activity %s missing required field: DisplayName", a.ID)
		}
		if a.TaskType == "" {
			return fmt.Errorf("activity %s missing required field: TaskType", a.ID)
		}
		if a.Category == "" {
			return fmt.Errorf("activity %s missing required field: Category", a.ID)
		}
		if len(a.InputSchema) > 0 {
			if _, err := validation.CompileSchema(a.InputSchema); err != nil {
				return fmt.Errorf("activity %s input schema: %w", a.ID, err)
			}
		}
	}

	var missing []string
	for _, taskType := range config.TaskTypes {
		if _, ok := reg.Find(taskType); !ok {
			missing = append(missing, taskType)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("task types without an activity: %s", strings.Join(missing, ", "))
	}
	return nil
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  add       Add a new activity to the registry
  update    Update an existing activity's field
  validate  Validate the registry file and compile its input schemas
  list      Print task types with category, status and timeout
  help      Show this help message

Examples:
  registry-updater add -id export-dashboard -displayName "Export Dashboard" -category reporting
  registry-updater update -id project-scenarios -field status -value verified
  registry-updater validate -path configs/activity-registry.json

Every command accepts -path to point at a different registry file.`)
}
