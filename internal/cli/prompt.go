package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rwidyarsa/awan/internal/router"
)

// ConfirmDecision shows the operator what is about to run and why it was
// flagged, then asks for approval. Returns true only on an explicit yes.
func ConfirmDecision(d router.Decision) (bool, error) {
	fmt.Println()
	fmt.Printf("About to execute: %s\n", d.Describe())
	if len(d.Risk.Factors) > 0 {
		fmt.Println("This operation was flagged because:")
		for _, factor := range d.Risk.Factors {
			fmt.Printf("  - %s\n", factor)
		}
	}
	if ids := d.Params.ProjectIDs; len(ids) > 0 {
		fmt.Printf("Affected projects: %s\n", strings.Join(ids, ", "))
	} else if d.Params.ProjectID != "" {
		fmt.Printf("Affected project: %s\n", d.Params.ProjectID)
	}
	fmt.Println()

	return promptYesNo("Do you want to continue?")
}

// promptYesNo prompts the user for a yes/no response.
func promptYesNo(question string) (bool, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("%s [y/N]: ", question)

	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
