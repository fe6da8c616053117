package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagYAML bool

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long: `List the difficulty presets from the active config.

AI speed is how far the AI paddle moves per tick; ball vx/vy are the
serve velocities.`,
	Args: cobra.NoArgs,
	Run:  runDifficulties,
}

func init() {
	difficultiesCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print as a config snippet")
}

func runDifficulties(_ *cobra.Command, _ []string) {
	if flagYAML {
		out, err := yaml.Marshal(map[string]any{"difficulties": gameCfg.Difficulties})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#0ff"))).
		Headers("Name", "AI speed", "Ball vx", "Ball vy")
	for _, d := range gameCfg.Difficulties {
		t.Row(d.Name, fmt.Sprint(d.AISpeed), fmt.Sprint(d.BallBaseVX), fmt.Sprint(d.BallBaseVY))
	}
	fmt.Println(t.Render())
	fmt.Printf("First to %d wins. Power-ups last %s.\n", gameCfg.Gameplay.TargetScore, gameCfg.PowerUps.Duration())
}
