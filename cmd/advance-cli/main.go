package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/didactidigital/showadvance"
	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

// valuesFile is the YAML shape the -values flag loads: the flat field map
// plus contacts and mode.
type valuesFile struct {
	Mode     string            `yaml:"mode"`
	Fields   map[string]string `yaml:"fields"`
	Contacts []sheet.Contact   `yaml:"contacts"`
}

func main() {
	valuesPath := flag.String("values", "", "YAML file with field values, contacts, and mode")
	rendererName := flag.String("renderer", "html", "output surface: html or pdf")
	mode := flag.String("mode", "", "render mode: production or internal (overrides the values file)")
	output := flag.String("output", "", "output file; derived from the event name when empty")
	vocabPath := flag.String("vocab", "", "alternate vocabulary document")
	layoutPath := flag.String("layout", "", "alternate layout document")
	interactive := flag.Bool("interactive", false, "prompt for headline fields missing from the values file")
	flag.Parse()

	ctx := context.Background()

	values, contacts, fileMode, err := loadValues(*valuesPath)
	if err != nil {
		log.Fatalf("Failed to load values: %v", err)
	}
	if *interactive {
		if err := promptHeadline(values); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	effectiveMode := fileMode
	if *mode != "" {
		effectiveMode = sheet.ParseMode(*mode)
	}

	var options []showadvance.Option
	if *vocabPath != "" {
		options = append(options, showadvance.WithVocabularyFile(*vocabPath))
	}
	if *layoutPath != "" {
		options = append(options, showadvance.WithLayoutFile(*layoutPath))
	}
	pipeline := showadvance.New(options...)

	renderOptions := render.Options{
		Mode:     effectiveMode,
		Values:   values,
		Contacts: contacts,
	}

	result, err := pipeline.Generate(ctx, showadvance.Request{
		Renderer: *rendererName,
		Options:  renderOptions,
	})
	if err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	target := *output
	if target == "" {
		renderer, err := pipeline.Renderer(*rendererName)
		if err != nil {
			log.Fatalf("Unknown renderer: %v", err)
		}
		target = pipeline.FileName(renderOptions) + "." + renderer.FileExtension()
	}

	if err := os.WriteFile(target, result, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Document written to %s\n", target)
}

func loadValues(path string) (sheet.FormRecord, []sheet.Contact, sheet.Mode, error) {
	if path == "" {
		return sheet.FormRecord{}, nil, sheet.ModeProduction, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, "", err
	}
	var file valuesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, "", fmt.Errorf("parse %s: %w", path, err)
	}

	values := sheet.FormRecord(file.Fields)
	if values == nil {
		values = sheet.FormRecord{}
	}
	return values, file.Contacts, sheet.ParseMode(file.Mode), nil
}

// promptHeadline asks for the fields the filename and hero block depend on
// when they are missing.
func promptHeadline(values sheet.FormRecord) error {
	prompts := []struct {
		key     string
		message string
	}{
		{"eventName", "Event name"},
		{"eventDate", "Event date (YYYY-MM-DD)"},
		{"venueName", "Venue name"},
	}

	for _, p := range prompts {
		if !values.Blank(p.key) {
			continue
		}
		var answer string
		if err := survey.AskOne(&survey.Input{Message: p.message}, &answer); err != nil {
			return err
		}
		values[p.key] = answer
	}
	return nil
}
