package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/HealingGarden_Go/internal/bootstrap"
	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/garden"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
	"github.com/osse101/HealingGarden_Go/internal/profile"
	"github.com/osse101/HealingGarden_Go/internal/utils"
)

// ErrConfirmationRequired is returned by destructive commands run without --yes
var ErrConfirmationRequired = errors.New("refusing to change saves without --yes")

// ErrProfileNotFound is returned when a profile has no save
var ErrProfileNotFound = errors.New("profile has no save")

func newListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the profiles that have a save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(opts, cmd)
			return opts.withStorage(cmd.Context(), func(st *bootstrap.Storage) error {
				ids, err := persistence.NewRepository(st.Store).List(cmd.Context())
				if err != nil {
					return err
				}
				if out.JSON() {
					return out.WriteJSON(ids)
				}
				for _, id := range ids {
					out.Printf("%s\n", id)
				}
				out.VerboseLog("%d profile(s) on %s", len(ids), st.Store.Name())
				return nil
			})
		},
	}
}

// PlantSummary is one planted slot in the inspect output
type PlantSummary struct {
	Slot  int              `json:"slot"`
	Type  domain.PlantType `json:"type"`
	Stage int              `json:"stage"`
	Ripe  bool             `json:"ripe"`
}

// InspectOutput is the JSON form of the inspect command
type InspectOutput struct {
	ProfileID    string            `json:"profileId"`
	SavedVersion int               `json:"savedVersion"`
	Migrations   []int             `json:"migrations,omitempty"`
	Replaced     []string          `json:"replacedTimestamps,omitempty"`
	FromFuture   bool              `json:"fromFuture,omitempty"`
	Level        int               `json:"level"`
	Gold         int               `json:"gold"`
	Water        int               `json:"water"`
	Plants       []PlantSummary    `json:"plants"`
	Seeds        []domain.SeedItem `json:"seeds"`
	Collection   int               `json:"collection"`
	Visitors     int               `json:"visitors"`
	UnreadMail   int               `json:"unreadMail"`
	Decorations  []string          `json:"decorations"`
	LastRecharge time.Time         `json:"lastWaterRechargeTime"`
}

func newInspectCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <profile>",
		Short: "Decode a save, migrating it in memory, and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := newFormatter(opts, cmd)

			cat, err := bootstrap.LoadCatalog(opts.Config)
			if err != nil {
				return err
			}
			loc, err := opts.Config.Location()
			if err != nil {
				return err
			}

			return opts.withStorage(ctx, func(st *bootstrap.Storage) error {
				repo := persistence.NewRepository(st.Store, persistence.WithLocation(loc))
				d, err := repo.Load(ctx, args[0])
				if err != nil {
					return err
				}
				if d == nil {
					return fmt.Errorf("%w: %s", ErrProfileNotFound, args[0])
				}
				return printInspect(out, summarize(args[0], d, cat, loc))
			})
		},
	}
}

func summarize(profileID string, d *persistence.Decoded, cat *catalog.Catalog, loc *time.Location) InspectOutput {
	e := garden.FromState(cat, d.State, garden.WithLocation(loc), garden.WithProfileID(profileID))
	s := e.Snapshot()

	res := InspectOutput{
		ProfileID:    profileID,
		SavedVersion: d.FromVersion,
		Migrations:   d.Applied,
		Replaced:     d.Replaced,
		FromFuture:   d.FromFuture,
		Level:        s.Level,
		Gold:         s.Gold,
		Water:        s.Water,
		Seeds:        s.Seeds,
		Collection:   len(s.Collection),
		Visitors:     len(s.Visitors),
		UnreadMail:   e.UnreadMailCount(),
		Decorations:  s.Decorations,
		LastRecharge: s.LastWaterRechargeTime,
		Plants:       make([]PlantSummary, 0, len(s.Plants)),
	}
	now := e.Now()
	for _, p := range s.Plants {
		cfg, ok := cat.Plant(p.Type)
		if !ok {
			continue
		}
		res.Plants = append(res.Plants, PlantSummary{
			Slot:  p.SlotIndex,
			Type:  p.Type,
			Stage: garden.GrowthStage(p, cfg, now),
			Ripe:  garden.IsRipe(p, cfg, now),
		})
	}
	return res
}

func printInspect(out *OutputFormatter, s InspectOutput) error {
	if out.JSON() {
		return out.WriteJSON(s)
	}

	out.Printf("Profile:   %s\n", s.ProfileID)
	out.Printf("Saved as:  v%d (current v%d)\n", s.SavedVersion, persistence.CurrentVersion)
	if len(s.Migrations) > 0 {
		out.Printf("Migrates:  %v\n", s.Migrations)
	}
	if len(s.Replaced) > 0 {
		out.Printf("Replaced:  %v\n", s.Replaced)
	}
	out.Printf("Level %d, %d gold, %d water\n", s.Level, s.Gold, s.Water)
	out.Printf("Collection %d, visitors %d, unread mail %d\n", s.Collection, s.Visitors, s.UnreadMail)

	if len(s.Plants) == 0 {
		return nil
	}
	tw := out.Table()
	fmt.Fprintln(tw, "SLOT\tPLANT\tSTAGE\tRIPE")
	for _, p := range s.Plants {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%t\n", p.Slot, p.Type, p.Stage, p.Ripe)
	}
	return tw.Flush()
}

func newResetCommand(opts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset <profile>",
		Short: "Delete a profile's save so it starts fresh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := profile.ValidateProfileID(args[0]); err != nil {
				return err
			}
			if !yes {
				return ErrConfirmationRequired
			}
			out := newFormatter(opts, cmd)
			return opts.withStorage(cmd.Context(), func(st *bootstrap.Storage) error {
				if err := st.Store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				out.Printf("Deleted save for %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}

func newImportCommand(opts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <profile> <file>",
		Short: "Load a save file, migrate it to the current version and store it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileID, path := args[0], args[1]
			if err := profile.ValidateProfileID(profileID); err != nil {
				return err
			}
			if !yes {
				return ErrConfirmationRequired
			}
			var data json.RawMessage
			if err := utils.ReadJSONFile(path, &data); err != nil {
				return err
			}
			loc, err := opts.Config.Location()
			if err != nil {
				return err
			}
			out := newFormatter(opts, cmd)
			return opts.withStorage(cmd.Context(), func(st *bootstrap.Storage) error {
				version, err := importSave(cmd.Context(), st.Store, profileID, data, loc)
				if err != nil {
					return err
				}
				out.Printf("Imported %s from v%d\n", profileID, version)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm overwriting an existing save")
	return cmd
}

// importSave decodes data as a save of any known version and rewrites it in
// the current layout. It returns the version the file was written with.
func importSave(ctx context.Context, store persistence.Store, profileID string, data []byte, loc *time.Location) (int, error) {
	d, err := persistence.NewCodec(loc).Decode(data, time.Now())
	if err != nil {
		return 0, err
	}
	if err := persistence.NewRepository(store).SaveState(ctx, profileID, d.State); err != nil {
		return 0, err
	}
	return d.FromVersion, nil
}

func newExportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <profile> <file>",
		Short: "Write a profile's save, migrated to the current version, to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileID, path := args[0], args[1]
			loc, err := opts.Config.Location()
			if err != nil {
				return err
			}
			out := newFormatter(opts, cmd)
			return opts.withStorage(cmd.Context(), func(st *bootstrap.Storage) error {
				if err := exportSave(cmd.Context(), st.Store, profileID, path, loc); err != nil {
					return err
				}
				out.Printf("Exported %s to %s\n", profileID, path)
				return nil
			})
		},
	}
}

func exportSave(ctx context.Context, store persistence.Store, profileID, path string, loc *time.Location) error {
	d, err := persistence.NewRepository(store, persistence.WithLocation(loc)).Load(ctx, profileID)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}
	data, err := persistence.Encode(d.State)
	if err != nil {
		return err
	}
	var env persistence.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	return utils.WriteJSONFile(path, env)
}
