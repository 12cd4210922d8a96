package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/laasilva/dracolich-library-api-sub000/internal/handlers/library/v1alpha1"
)

var getClassCmd = &cobra.Command{
	Use:   "get-class <name-or-id>",
	Short: "Get a class with its subclasses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.Struct, error) {
			return c.GetClass(ctx, wrapperspb.String(args[0]))
		})
	},
}

var listClassesCmd = &cobra.Command{
	Use:   "list-classes",
	Short: "List every class with its subclasses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.ListValue, error) {
			return c.ListClasses(ctx, &emptypb.Empty{})
		})
	},
}

var getRaceCmd = &cobra.Command{
	Use:   "get-race <name-or-id>",
	Short: "Get a race with its subraces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.Struct, error) {
			return c.GetRace(ctx, wrapperspb.String(args[0]))
		})
	},
}

var listRacesCmd = &cobra.Command{
	Use:   "list-races",
	Short: "List every race with its subraces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.ListValue, error) {
			return c.ListRaces(ctx, &emptypb.Empty{})
		})
	},
}

var getSpellCmd = &cobra.Command{
	Use:   "get-spell <name>",
	Short: "Get one spell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.Struct, error) {
			return c.GetSpell(ctx, wrapperspb.String(args[0]))
		})
	},
}

var (
	spellLevel int
	spellClass string
)

var listSpellsCmd = &cobra.Command{
	Use:   "list-spells",
	Short: "List spells, optionally by level and class",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter := map[string]interface{}{}
		if cmd.Flags().Changed("level") {
			filter["level"] = spellLevel
		}
		if spellClass != "" {
			filter["class"] = spellClass
		}
		req, err := structpb.NewStruct(filter)
		if err != nil {
			return err
		}

		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.ListValue, error) {
			return c.ListSpells(ctx, req)
		})
	},
}

var listFeaturesCmd = &cobra.Command{
	Use:   "list-features [class]",
	Short: "List class features, optionally for one class",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class := ""
		if len(args) == 1 {
			class = args[0]
		}
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.ListValue, error) {
			return c.ListFeatures(ctx, wrapperspb.String(class))
		})
	},
}

var listAttributesCmd = &cobra.Command{
	Use:   "list-attributes",
	Short: "List racial attributes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.ListValue, error) {
			return c.ListAttributes(ctx, &emptypb.Empty{})
		})
	},
}

var listAlignmentsCmd = &cobra.Command{
	Use:   "list-alignments",
	Short: "List alignments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.ListValue, error) {
			return c.ListAlignments(ctx, &emptypb.Empty{})
		})
	},
}

var listBackgroundsCmd = &cobra.Command{
	Use:   "list-backgrounds",
	Short: "List backgrounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.ListValue, error) {
			return c.ListBackgrounds(ctx, &emptypb.Empty{})
		})
	},
}

var listEquipmentCmd = &cobra.Command{
	Use:   "list-equipment [category]",
	Short: "List equipment, optionally for one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := ""
		if len(args) == 1 {
			category = args[0]
		}
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.ListValue, error) {
			return c.ListEquipment(ctx, wrapperspb.String(category))
		})
	},
}

var getEquipmentCmd = &cobra.Command{
	Use:   "get-equipment <name>",
	Short: "Get one piece of equipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c v1alpha1.LibraryServiceClient) (*structpb.Struct, error) {
			return c.GetEquipment(ctx, wrapperspb.String(args[0]))
		})
	},
}

func init() {
	listSpellsCmd.Flags().IntVar(&spellLevel, "level", 0, "spell level (0 for cantrips)")
	listSpellsCmd.Flags().StringVar(&spellClass, "class", "", "class that can cast the spell")
}
