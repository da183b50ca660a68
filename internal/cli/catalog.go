package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/HealingGarden_Go/internal/bootstrap"
	"github.com/osse101/HealingGarden_Go/internal/catalog"
)

// CatalogOutput is the JSON form of the catalog command
type CatalogOutput struct {
	DefaultSeed string                     `json:"defaultSeed"`
	Plants      []catalog.PlantConfig      `json:"plants"`
	Animals     []catalog.AnimalConfig     `json:"animals"`
	Decorations []catalog.DecorationConfig `json:"decorations"`
}

func newCatalogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the plant, animal and decoration catalog in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := bootstrap.LoadCatalog(opts.Config)
			if err != nil {
				return err
			}
			return printCatalog(newFormatter(opts, cmd), cat)
		},
	}
}

func printCatalog(out *OutputFormatter, cat *catalog.Catalog) error {
	if out.JSON() {
		return out.WriteJSON(CatalogOutput{
			DefaultSeed: string(cat.DefaultSeed()),
			Plants:      cat.Plants(),
			Animals:     cat.Animals(),
			Decorations: cat.Decorations(),
		})
	}

	title := cases.Title(language.English)

	tw := out.Table()
	fmt.Fprintln(tw, "PLANT\tRARITY\tPRICE\tHARVEST\tGROWTH\tSHOP")
	for _, p := range cat.Plants() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%gm\t%t\n",
			p.Name, title.String(string(p.Rarity)), p.SeedPrice, p.HarvestGold, p.GrowthMinutes, !cat.IsDefaultSeed(p.Type))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	out.Printf("\n")
	tw = out.Table()
	fmt.Fprintln(tw, "ANIMAL\tNAME\tTRIGGER\tRANDOM")
	for _, a := range cat.Animals() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", title.String(string(a.Type)), a.Name, a.Trigger.Type, a.RandomEnabled())
	}
	return tw.Flush()
}
