// +build ignore

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"color-chooser/internal/colors"
	"color-chooser/internal/ui"
)

// seedFile mirrors the SEED_FILE format read by the lookup service.
type seedFile struct {
	Colors []colors.Record `yaml:"colors"`
}

var reader = bufio.NewReader(os.Stdin)

func main() {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════╗")
	fmt.Println("║   Color Chooser — Seed File Editor           ║")
	fmt.Println("╚══════════════════════════════════════════════╝")
	fmt.Println()

	path := "colors.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file := loadSeed(path)

	for {
		fmt.Println("What would you like to do?")
		fmt.Println("  1) Add a color")
		fmt.Println("  2) List colors")
		fmt.Println("  3) Remove a color")
		fmt.Println("  4) Change a color's hex")
		fmt.Println("  5) Reset to the default palette")
		fmt.Println("  6) Save and exit")
		fmt.Println("  7) Exit without saving")
		fmt.Println()

		switch prompt("Choose an option (1-7)") {
		case "1":
			addColor(file)
		case "2":
			listColors(file)
		case "3":
			removeColor(file)
		case "4":
			recolor(file)
		case "5":
			file.Colors = colors.Defaults()
			fmt.Println("\n✅ Palette reset to Turquoise, Red, Yellow")
		case "6":
			if err := saveSeed(path, file); err != nil {
				fmt.Println("❌ " + err.Error())
				continue
			}
			fmt.Println("\n✅ Saved to " + path)
			fmt.Println("📋 Point the lookup service at it and restart:")
			fmt.Println("   SEED_FILE=" + path + " go run ./cmd/colorsvc")
			return
		case "7":
			fmt.Println("Exiting without saving.")
			return
		default:
			fmt.Println("Invalid option. Try again.")
		}
		fmt.Println()
	}
}

func addColor(file *seedFile) {
	fmt.Println("\n── Add Color ─────────────────────────────")

	name := prompt("Name (exact, case-sensitive)")
	if name == "" {
		fmt.Println("Name cannot be empty.")
		return
	}
	for _, r := range file.Colors {
		if r.Name == name {
			fmt.Println("⚠️  Color '" + name + "' already exists.")
			return
		}
	}

	hex, ok := promptHex("Hex code (#rrggbb)")
	if !ok {
		return
	}

	file.Colors = append(file.Colors, colors.Record{Name: name, Hex: hex})
	fmt.Printf("\n✅ %s %s added\n", ui.Swatch(hex), name)
}

func listColors(file *seedFile) {
	fmt.Println("\n── Current Colors ────────────────────────")
	if len(file.Colors) == 0 {
		fmt.Println("  No colors. The service would start with an empty list.")
		return
	}
	fmt.Println(ui.ColorTable(file.Colors))
}

func removeColor(file *seedFile) {
	listColors(file)
	name := prompt("Name to remove")

	for i, r := range file.Colors {
		if r.Name == name {
			file.Colors = append(file.Colors[:i], file.Colors[i+1:]...)
			fmt.Println("✅ Removed " + name)
			return
		}
	}
	fmt.Println("⚠️  No color named '" + name + "'")
}

func recolor(file *seedFile) {
	listColors(file)
	name := prompt("Name to change")

	for i, r := range file.Colors {
		if r.Name != name {
			continue
		}
		hex, ok := promptHex("New hex code")
		if !ok {
			return
		}
		file.Colors[i].Hex = hex
		fmt.Printf("✅ %s %s is now %s\n", ui.Swatch(hex), name, hex)
		return
	}
	fmt.Println("⚠️  No color named '" + name + "'")
}

func loadSeed(path string) *seedFile {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Println("ℹ️  " + path + " not found, starting from the default palette")
		return &seedFile{Colors: colors.Defaults()}
	}
	if err != nil {
		fmt.Println("❌ " + err.Error())
		os.Exit(1)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		fmt.Println("❌ Failed to parse " + path + ": " + err.Error())
		os.Exit(1)
	}
	return &file
}

func saveSeed(path string, file *seedFile) error {
	valid, err := colors.Validate(file.Colors)
	if err != nil {
		return fmt.Errorf("refusing to save: %w", err)
	}

	data, err := yaml.Marshal(seedFile{Colors: valid})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func promptHex(label string) (string, bool) {
	hex, err := colors.NormalizeHex(prompt(label))
	if err != nil {
		fmt.Println("⚠️  " + err.Error())
		return "", false
	}
	return hex, true
}

func prompt(label string) string {
	fmt.Print(label + ": ")
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
