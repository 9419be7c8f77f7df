package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"softypoker/pkg/poker"
)

// PaytableCmd prints the payouts
type PaytableCmd struct {
	Bet int `short:"b" default:"1" help:"Bet to show the payouts for"`
}

// Run prints the paytable
func (p *PaytableCmd) Run() error {
	if p.Bet <= 0 {
		return fmt.Errorf("bet must be > 0, got %d", p.Bet)
	}

	printPaytable(os.Stdout, poker.Standard(), p.Bet)
	return nil
}

func printPaytable(out io.Writer, paytable poker.Paytable, bet int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("multiplier"),
		headerStyle.Render(fmt.Sprintf("pays (bet %d)", bet)))

	for _, row := range paytable.Table(bet) {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\n",
			categoryStyle.Render(row.Category.String()),
			paytable.Multiplier(row.Category),
			row.Payout)
	}

	_ = w.Flush()
	_, _ = fmt.Fprintf(out, "\nSuper Royal is a royal flush in %s\n", paytable.PremiumSuit())
}
