package tutor

import (
	"fmt"
	"strings"
)

// ColabInstructions builds the remote-notebook run instructions for a saved
// code artifact, parameterized by the filename and its pip dependencies.
func ColabInstructions(filename string, deps []string) string {
	var b strings.Builder
	b.WriteString("How to run in Google Colab:\n")
	b.WriteString("1. Open https://colab.research.google.com and create a new notebook.\n")
	fmt.Fprintf(&b, "2. Upload %s via the Files panel (folder icon on the left).\n", filename)
	step := 3
	if len(deps) > 0 {
		fmt.Fprintf(&b, "%d. In the first cell run: !pip install %s\n", step, strings.Join(deps, " "))
		step++
	}
	fmt.Fprintf(&b, "%d. In the next cell run: %%run %s\n", step, filename)
	return b.String()
}

// LocalInstructions builds the local-execution run instructions for a saved
// code artifact.
func LocalInstructions(filename string, deps []string) string {
	var b strings.Builder
	b.WriteString("How to run locally:\n")
	b.WriteString("1. Make sure Python 3.9+ is installed: python3 --version\n")
	b.WriteString("2. Create a virtual environment: python3 -m venv .venv && source .venv/bin/activate\n")
	step := 3
	if len(deps) > 0 {
		fmt.Fprintf(&b, "%d. Install dependencies: pip install %s\n", step, strings.Join(deps, " "))
		step++
	}
	fmt.Fprintf(&b, "%d. Run the script: python3 %s\n", step, filename)
	return b.String()
}
