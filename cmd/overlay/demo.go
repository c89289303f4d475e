package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/internal/demo"
)

type demoOptions struct {
	rtl       bool
	locale    string
	placement string
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open an interactive page with menus and dialogs",
		Long: `Open an interactive page with a toolbar of overlays: an action menu, an
action bar, a combobox, a content menu and nested dialogs.

Key bindings from the keys section of --config replace the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dopts, err := opts.build(cmd, root)
			if err != nil {
				return err
			}
			return demo.Run(dopts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.rtl, "rtl", false, "Right-to-left layout")
	f.StringVar(&opts.locale, "locale", "", "Derive the reading direction from a BCP 47 tag")
	f.StringVarP(&opts.placement, "placement", "p", "bottom-start", "Where menus open relative to their button")
	cmd.MarkFlagsMutuallyExclusive("rtl", "locale")

	return cmd
}

func (o *demoOptions) build(cmd *cobra.Command, root *rootFlags) (demo.Options, error) {
	file, err := root.loadConfig()
	if err != nil {
		return demo.Options{}, err
	}
	chainOpts, err := file.ChainOptions()
	if err != nil {
		return demo.Options{}, err
	}

	placement, err := overlay.ParsePlacement(o.placement)
	if err != nil {
		return demo.Options{}, fmt.Errorf("--placement: %w", err)
	}

	rtl := o.rtl
	switch {
	case cmd.Flags().Changed("locale"):
		rtl = overlay.DirectionForLocale(o.locale).IsRTL()
	case !cmd.Flags().Changed("rtl") && file.Placement != nil:
		rtl = file.Placement.RTL()
	}

	return demo.Options{
		RTL:          rtl,
		Placement:    placement,
		ChainOptions: chainOpts,
	}, nil
}
