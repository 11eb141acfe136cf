package commands

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// helpSections groups commands by area for the interactive help screen.
// Commands missing from every list fall into "Other".
var helpSections = []struct {
	title string
	names []string
}{
	{"Session", []string{"login", "logout", "whoami", "dashboard"}},
	{"Campaigns", []string{"listCampaigns", "createCampaign", "updateCampaign", "deleteCampaign"}},
	{"Donations", []string{"listDonations", "viewDonation", "updateDonationStatus", "completeDonation", "submitResult", "viewResult"}},
	{"Inventory", []string{"listBloodUnits", "registerBloodUnit", "updateBloodUnit", "separateBloodUnit", "unitHistory"}},
	{"Emergencies", []string{"listEmergencies", "viewEmergency", "approveEmergency", "rejectEmergency", "provideContacts", "emergencyLogs"}},
	{"Content", []string{"listBlogs", "createBlog", "updateBlog", "deleteBlog", "listTemplates", "viewTemplate", "createTemplate", "updateTemplate", "activateTemplate", "deleteTemplate"}},
	{"Staff", []string{"listStaff", "updateProfile"}},
}

// InteractiveCmd starts a shell that authenticates once and then dispatches
// lines to the sibling commands without re-running app initialization.
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (authenticate once, run multiple commands)",
		Long: `Start an interactive session where commands share one authenticated client
and one warm cache. The session runs until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			siblings := siblingCommands(cmd)

			fmt.Println()
			fmt.Println(styleHeader.Render("BloodLink interactive session"))
			fmt.Println(styleNeutral.Render("Type 'help' for commands, 'exit' or 'quit' to leave."))

			prompt := styleInfo.Render(fmt.Sprintf("bloodlink:%s> ", app.Role))
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print(prompt)
				if !scanner.Scan() {
					break
				}

				words, err := splitLine(scanner.Text())
				if err != nil {
					printLineError(err)
					continue
				}
				if len(words) == 0 {
					continue
				}

				switch words[0] {
				case "exit", "quit":
					fmt.Println(styleNeutral.Render("Session closed."))
					return nil
				case "help":
					printInteractiveHelp(siblings)
					continue
				}

				target, ok := siblings[words[0]]
				if !ok {
					printLineError(fmt.Errorf("unknown command %q (type 'help' for the list)", words[0]))
					continue
				}
				if err := dispatch(target, words[1:]); err != nil {
					printLineError(err)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}
			return nil
		},
	}
}

// siblingCommands indexes the root's subcommands by name, leaving out the
// shell itself and cobra's built-ins.
func siblingCommands(cmd *cobra.Command) map[string]*cobra.Command {
	siblings := make(map[string]*cobra.Command)
	for _, sub := range cmd.Parent().Commands() {
		switch sub.Name() {
		case "interactive", "completion", "help":
			continue
		}
		siblings[sub.Name()] = sub
	}
	return siblings
}

// dispatch runs a command's RunE in-process. Flags are reset to their
// defaults first, since the same *cobra.Command is reused across lines.
// PersistentPreRunE is deliberately skipped: the app is already initialized.
func dispatch(target *cobra.Command, args []string) error {
	target.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		flag.Value.Set(flag.DefValue)
	})

	if err := target.ParseFlags(args); err != nil {
		return err
	}
	positional := target.Flags().Args()
	if err := target.Args(target, positional); err != nil {
		return err
	}

	if target.RunE != nil {
		return target.RunE(target, positional)
	}
	if target.Run != nil {
		target.Run(target, positional)
	}
	return nil
}

func printLineError(err error) {
	fmt.Printf("%s %v\n", styleBad.Render("✗"), err)
}

func printInteractiveHelp(siblings map[string]*cobra.Command) {
	seen := make(map[string]bool)

	printSection := func(title string, names []string) {
		printHeader(title)
		for _, name := range names {
			fmt.Printf("  %s %s\n",
				styleInfo.Render(fmt.Sprintf("%-45s", siblings[name].Use)),
				styleNeutral.Render(siblings[name].Short))
		}
	}

	for _, section := range helpSections {
		var present []string
		for _, name := range section.names {
			if _, ok := siblings[name]; ok {
				present = append(present, name)
				seen[name] = true
			}
		}
		if len(present) > 0 {
			printSection(section.title, present)
		}
	}

	var rest []string
	for name := range siblings {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	if len(rest) > 0 {
		sort.Strings(rest)
		printSection("Other", rest)
	}

	printHeader("Session control")
	fmt.Printf("  %s %s\n",
		styleInfo.Render(fmt.Sprintf("%-45s", "help")),
		styleNeutral.Render("Show this help message"))
	fmt.Printf("  %s %s\n",
		styleInfo.Render(fmt.Sprintf("%-45s", "exit, quit")),
		styleNeutral.Render("Leave the interactive session"))
	fmt.Println()
}

// splitLine tokenizes one input line. Quoted runs (single or double) keep
// their whitespace; an unterminated quote is an error rather than a silent
// truncation.
func splitLine(line string) ([]string, error) {
	var words []string
	var word strings.Builder
	var quote rune
	wordOpen := false

	flush := func() {
		if wordOpen {
			words = append(words, word.String())
			word.Reset()
			wordOpen = false
		}
	}

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			wordOpen = true
		case unicode.IsSpace(r):
			flush()
		default:
			word.WriteRune(r)
			wordOpen = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	flush()

	return words, nil
}
