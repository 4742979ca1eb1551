package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LaGuillotine/docx-redactor/pkg/redactor"
)

func main() {
	fmt.Println("*** DOCX Highlight Redactor ***")
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	for {
		path, quit := chooseFile(in)
		if quit {
			return
		}
		if path == "" {
			continue
		}
		redactMenu(in, path)
	}
}

func chooseFile(in *bufio.Scanner) (path string, quit bool) {
	fmt.Println("(l) Choose file to redact by list")
	fmt.Println("(p) Choose file to redact by path")
	fmt.Println("(q) Quit")

	switch prompt(in, "> ") {
	case "l":
		return chooseByList(in), false
	case "p":
		return chooseByPath(in), false
	case "q":
		return "", true
	default:
		fmt.Println()
		return "", false
	}
}

func chooseByList(in *bufio.Scanner) string {
	files, err := filepath.Glob("*.docx")
	if err != nil || len(files) == 0 {
		fmt.Println("No .docx files in the current directory")
		return ""
	}
	for i, file := range files {
		fmt.Printf("%d. %s\n", i, file)
	}

	for {
		choice, err := strconv.Atoi(prompt(in, "> "))
		if err == nil && choice >= 0 && choice < len(files) {
			return files[choice]
		}
	}
}

func chooseByPath(in *bufio.Scanner) string {
	for {
		path := prompt(in, "Enter file name: ")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
}

func redactMenu(in *bufio.Scanner, path string) {
	r := redactor.New()
	if err := r.Open(path); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}
	defer r.Close()

	for {
		fmt.Println("(l) List all used highlighting colors")
		fmt.Println("(r) Redact highlights")
		fmt.Println("(s) Save your changes")
		fmt.Println("(c) Close the current file")

		switch prompt(in, "> ") {
		case "l":
			colors, err := r.Colors()
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				continue
			}
			for _, color := range colors {
				fmt.Println(color)
			}
		case "r":
			replacement := prompt(in, "> Replacement? ")
			color := prompt(in, "> Color? ")
			result, err := r.Redact(color, replacement)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				continue
			}
			fmt.Printf("Redacted %d highlight(s)", result.Redacted)
			if result.Skipped > 0 {
				fmt.Printf(", skipped %d", result.Skipped)
			}
			fmt.Println()
		case "s":
			answer := prompt(in, "Warning: the original file will be overwritten! Do you want to proceed? [N/y] ")
			if strings.ToLower(answer) != "y" {
				fmt.Println("Canceled")
				continue
			}
			if err := r.Save(); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				continue
			}
			fmt.Println("Saved")
			// Save closes the session; reopen so the menu keeps working.
			if err := r.Open(path); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				return
			}
		case "c":
			return
		default:
			fmt.Println()
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}
