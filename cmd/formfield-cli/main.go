package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/binding"
	"github.com/goliatone/go-formfield/pkg/controls"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/settings"
)

func main() {
	fieldsPath := flag.String("fields", "", "field definitions: a YAML list or an OpenAPI document")
	schemaName := flag.String("schema", "", "component schema name when -fields is an OpenAPI document")
	defaultsPath := flag.String("defaults", "", "system defaults YAML (float_precision, currency, ...)")
	flag.Parse()

	if *fieldsPath == "" {
		log.Fatal("-fields is required")
	}

	fields, err := loadFields(*fieldsPath, *schemaName)
	if err != nil {
		log.Fatalf("Failed to load field definitions: %v", err)
	}

	defaults := settings.New()
	if *defaultsPath != "" {
		defaults, err = settings.Load(*defaultsPath)
		if err != nil {
			log.Fatalf("Failed to load defaults: %v", err)
		}
	}

	registry := controls.NewRegistry(controls.Deps{Defaults: defaults})
	binder := binding.New(registry)
	doc := model.NewDocument(nil)

	for _, field := range fields {
		if _, ok := registry.Resolve(field); !ok {
			continue
		}

		var raw string
		prompt := &survey.Input{
			Message: model.LabelFor(field),
			Help:    fmt.Sprintf("%s field; arithmetic like 12*4.5 is accepted", field.Type),
		}
		if err := survey.AskOne(prompt, &raw); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				os.Exit(130)
			}
			log.Fatalf("Prompt failed: %v", err)
		}

		if err := binder.Commit([]model.FieldDefinition{field}, doc, map[string]any{field.Name: raw}); err != nil {
			log.Fatalf("Failed to commit %q: %v", field.Name, err)
		}
	}

	display := binder.Display(fields, doc)
	for _, field := range fields {
		stored, ok := doc.Get(field.Name)
		if !ok {
			continue
		}
		fmt.Printf("%-24s stored=%-16v display=%q\n", field.Name, stored, display[field.Name])
	}
}

func loadFields(path, schemaName string) ([]model.FieldDefinition, error) {
	if schemaName != "" {
		return openapi.Fields(context.Background(), openapi.SourceFromFile(path), schemaName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var fields []model.FieldDefinition
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return fields, nil
}
