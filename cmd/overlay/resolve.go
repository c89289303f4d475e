package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-overlay"
)

type resolveOptions struct {
	anchor           string
	origin           string
	content          string
	container        string
	placement        string
	fallbacks        []string
	noFallbacks      bool
	gap              int
	shift            int
	rtl              bool
	locale           string
	allowOutOfBounds bool

	json    bool
	preview bool
}

type resolveOutput struct {
	Placement string `json:"placement"`
	Top       int    `json:"top"`
	Left      int    `json:"left"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Clipped   bool   `json:"clipped"`
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Compute the position of a floating panel",
		Long: `Compute where a floating panel of the given size goes next to an anchor.

Geometry flags take comma-separated cells: --anchor and --container are
x,y,width,height; --content is width,height; --origin is x,y. Flags override
the placement section of --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := root.loadConfig()
			if err != nil {
				return err
			}

			req := overlay.PlacementRequest{Preferred: overlay.BottomStart}
			if file.Placement != nil {
				if req, err = file.Placement.Request(); err != nil {
					return err
				}
			}
			if err := opts.apply(cmd, &req); err != nil {
				return err
			}

			res := overlay.Resolve(req)
			out := cmd.OutOrStdout()

			switch {
			case opts.json:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resolveOutput{
					Placement: res.Placement.String(),
					Top:       res.Top,
					Left:      res.Left,
					Width:     req.Content.Width,
					Height:    req.Content.Height,
					Clipped:   res.Clipped,
				})
			case opts.preview:
				preview, err := renderPreview(req, res)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, preview)
				return nil
			default:
				fmt.Fprintf(out, "placement: %s\ntop: %d\nleft: %d\nclipped: %t\n", res.Placement, res.Top, res.Left, res.Clipped)
				return nil
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.anchor, "anchor", "", "Anchor box as x,y,width,height")
	f.StringVar(&opts.origin, "origin", "", "Anchor at a point x,y instead of a box")
	f.StringVar(&opts.content, "content", "", "Panel size as width,height")
	f.StringVar(&opts.container, "container", "", "Container box as x,y,width,height (empty means unbounded)")
	f.StringVarP(&opts.placement, "placement", "p", "", "Preferred placement, e.g. bottom-start or end-center")
	f.StringSliceVar(&opts.fallbacks, "fallbacks", nil, "Placements to try when the preferred one does not fit")
	f.BoolVar(&opts.noFallbacks, "no-fallbacks", false, "Only try the preferred placement")
	f.IntVar(&opts.gap, "gap", 0, "Cells between anchor and panel")
	f.IntVar(&opts.shift, "shift", 0, "Cross-axis offset in cells")
	f.BoolVar(&opts.rtl, "rtl", false, "Right-to-left layout")
	f.StringVar(&opts.locale, "locale", "", "Derive the reading direction from a BCP 47 tag")
	f.BoolVar(&opts.allowOutOfBounds, "allow-out-of-bounds", false, "Do not clamp when nothing fits")
	f.BoolVar(&opts.json, "json", false, "Print the result as JSON")
	f.BoolVar(&opts.preview, "preview", false, "Draw the container, anchor and panel")
	cmd.MarkFlagsMutuallyExclusive("json", "preview")
	cmd.MarkFlagsMutuallyExclusive("rtl", "locale")

	return cmd
}

// apply overrides req with the flags that were set on the command line.
func (o *resolveOptions) apply(cmd *cobra.Command, req *overlay.PlacementRequest) error {
	changed := cmd.Flags().Changed

	if changed("anchor") {
		r, err := parseRect("anchor", o.anchor)
		if err != nil {
			return err
		}
		req.Anchor = r
	}
	if changed("origin") {
		v, err := parseInts("origin", o.origin, 2)
		if err != nil {
			return err
		}
		req.Origin = &overlay.Point{X: v[0], Y: v[1]}
	}
	if changed("content") {
		v, err := parseInts("content", o.content, 2)
		if err != nil {
			return err
		}
		req.Content = overlay.NewSize(v[0], v[1])
	}
	if changed("container") {
		if o.container == "" {
			req.Container = overlay.Rect{}
		} else {
			r, err := parseRect("container", o.container)
			if err != nil {
				return err
			}
			req.Container = r
		}
	}
	if changed("placement") {
		p, err := overlay.ParsePlacement(o.placement)
		if err != nil {
			return fmt.Errorf("--placement: %w", err)
		}
		req.Preferred = p
	}
	if changed("fallbacks") {
		req.Fallbacks = make([]overlay.Placement, 0, len(o.fallbacks))
		for _, s := range o.fallbacks {
			p, err := overlay.ParsePlacement(s)
			if err != nil {
				return fmt.Errorf("--fallbacks: %w", err)
			}
			req.Fallbacks = append(req.Fallbacks, p)
		}
	}
	if changed("no-fallbacks") {
		req.DisableFallbacks = o.noFallbacks
	}
	if changed("gap") {
		if o.gap < 0 {
			return fmt.Errorf("--gap must not be negative")
		}
		req.Gap = o.gap
	}
	if changed("shift") {
		req.Shift = o.shift
	}
	if changed("rtl") {
		req.RTL = o.rtl
	}
	if changed("locale") {
		req.RTL = overlay.DirectionForLocale(o.locale).IsRTL()
	}
	if changed("allow-out-of-bounds") {
		req.AllowOutOfBounds = o.allowOutOfBounds
	}
	return nil
}

func parseRect(flag, s string) (overlay.Rect, error) {
	v, err := parseInts(flag, s, 4)
	if err != nil {
		return overlay.Rect{}, err
	}
	if v[2] < 0 || v[3] < 0 {
		return overlay.Rect{}, fmt.Errorf("--%s: width and height must not be negative", flag)
	}
	return overlay.NewRect(v[0], v[1], v[2], v[3]), nil
}

func parseInts(flag, s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("--%s: want %d comma-separated numbers, got %q", flag, n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		out[i] = v
	}
	return out, nil
}
