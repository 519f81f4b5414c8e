// Command figdemo renders a named figure to PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/gogpu/mathfig"
	"github.com/gogpu/mathfig/config"
	"github.com/gogpu/mathfig/conic"
	"github.com/gogpu/mathfig/render"
	"github.com/gogpu/mathfig/solid"
)

type buildFunc func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error)

var figures = map[string]buildFunc{
	"ellipse": func(t *mathfig.Theme, _ *config.File) (*mathfig.Group, error) {
		e, err := conic.NewEllipse(3, 2)
		if err != nil {
			return nil, err
		}
		opts := conic.DefaultEllipseOptions()
		opts.ShowAxes = true
		opts.ShowDirectrices = true
		return e.Build(t, opts), nil
	},
	"hyperbola": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		h, err := conic.NewHyperbola(2, 1.5)
		if err != nil {
			return nil, err
		}
		h.RenderExtent = cfg.Conic.HyperbolaExtent
		h.Samples = cfg.Conic.HyperbolaSamples
		opts := conic.DefaultHyperbolaOptions()
		opts.AsymptoteLabels = true
		return h.Build(t, opts), nil
	},
	"parabola": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		p, err := conic.NewParabola(2, conic.OpenRight)
		if err != nil {
			return nil, err
		}
		p.Samples = cfg.Conic.ParabolaSamples
		opts := conic.DefaultParabolaOptions()
		opts.DirectrixLabel = true
		return p.Build(t, opts), nil
	},
	"circle": func(t *mathfig.Theme, _ *config.File) (*mathfig.Group, error) {
		c, err := conic.NewCircle(2, mathfig.V(1, 0.5, 0))
		if err != nil {
			return nil, err
		}
		return c.Build(t, conic.DefaultCircleOptions()), nil
	},
	"line": func(t *mathfig.Theme, _ *config.File) (*mathfig.Group, error) {
		l := conic.NewLine(mathfig.V(-3, -2, 0), mathfig.V(3, 4, 0))
		return l.Build(t, conic.DefaultLineOptions()), nil
	},
	"cube": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		c, err := solid.NewCube(2, "A")
		if err != nil {
			return nil, err
		}
		c.Center = mathfig.V(-1, -1, -1)
		opts := solid.DefaultCubeOptions()
		opts.Projection = cfg.Projection()
		return c.Build(t, opts), nil
	},
	"obliquecube": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		o, err := solid.NewObliqueCube(2)
		if err != nil {
			return nil, err
		}
		o.Center = mathfig.V(-1, -1, -1)
		o.Projection = cfg.Projection()
		return o.Build(t, solid.DefaultObliqueCubeOptions()), nil
	},
	"cuboid": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		c, err := solid.NewCuboid(3, 2, 1.5)
		if err != nil {
			return nil, err
		}
		c.Center = mathfig.V(-1, -1.5, -0.75)
		opts := solid.DefaultCuboidOptions()
		opts.Projection = cfg.Projection()
		return c.Build(t, opts), nil
	},
	"pyramid": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		p, err := solid.NewPyramid(2.5, 3)
		if err != nil {
			return nil, err
		}
		p.Center = mathfig.V(0, 0, -1.5)
		opts := solid.DefaultPyramidOptions()
		opts.Projection = cfg.Projection()
		return p.Build(t, opts), nil
	},
	"tetrahedron": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		td, err := solid.NewTetrahedron(2.5)
		if err != nil {
			return nil, err
		}
		td.Center = mathfig.V(0, 0, -1)
		opts := solid.DefaultPyramidOptions()
		opts.Projection = cfg.Projection()
		return td.Build(t, opts), nil
	},
	"prism": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		pr, err := solid.NewTriangularPrism(1.5, 3)
		if err != nil {
			return nil, err
		}
		pr.Center = mathfig.V(0, 0, -1.5)
		opts := solid.DefaultPrismOptions()
		opts.Projection = cfg.Projection()
		return pr.Build(t, opts), nil
	},
	"cylinder": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		c, err := solid.NewCylinder(2, 3)
		if err != nil {
			return nil, err
		}
		c.Skew = cfg.Solid.Skew
		c.Center = mathfig.V(0, -1.5, 0)
		return c.Build(t, solid.DefaultCylinderOptions()), nil
	},
	"cone": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		c, err := solid.NewCone(2, 3.5)
		if err != nil {
			return nil, err
		}
		c.Skew = cfg.Solid.Skew
		c.Center = mathfig.V(0, -1.75, 0)
		return c.Build(t, solid.DefaultConeOptions()), nil
	},
	"frustum": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		f, err := solid.NewFrustum(2.5, 1.25, 2)
		if err != nil {
			return nil, err
		}
		f.Skew = cfg.Solid.Skew
		f.Center = mathfig.V(0, -1, 0)
		return f.Build(t, solid.DefaultFrustumOptions()), nil
	},
	"sphere": func(t *mathfig.Theme, cfg *config.File) (*mathfig.Group, error) {
		s, err := solid.NewSphere(2)
		if err != nil {
			return nil, err
		}
		s.XAxisAngle = cfg.Solid.XAxisAngle * mathfig.Degree
		return s.Build(t, solid.DefaultSphereOptions()), nil
	},
}

func figureNames() []string {
	names := make([]string, 0, len(figures))
	for name := range figures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func main() {
	var (
		figure   = flag.String("figure", "ellipse", "figure to render")
		output   = flag.String("o", "figure.png", "output file")
		width    = flag.Int("width", 0, "image width (0 uses the config)")
		height   = flag.Int("height", 0, "image height (0 uses the config)")
		scale    = flag.Float64("scale", 0, "pixels per world unit (0 uses the config)")
		cfgPath  = flag.String("config", "", "INI config file")
		fontPath = flag.String("font", "", "TTF/OTF font for labels")
		list     = flag.Bool("list", false, "list available figures")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *list {
		for _, name := range figureNames() {
			fmt.Println(name)
		}
		return
	}

	if *verbose {
		mathfig.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	build, ok := figures[*figure]
	if !ok {
		log.Fatalf("Unknown figure %q, try -list", *figure)
	}

	g, err := build(cfg.Theme(), cfg)
	if err != nil {
		log.Fatalf("Failed to build %s: %v", *figure, err)
	}

	opts := cfg.RenderOptions()
	if *width > 0 {
		opts.Width = *width
	}
	if *height > 0 {
		opts.Height = *height
	}
	if *scale > 0 {
		opts.Scale = *scale
	}
	if *fontPath != "" {
		opts.FontPath = *fontPath
	}

	r, err := render.New(opts)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	if err := r.Render(g); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := r.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save PNG: %v", err)
	}

	log.Printf("Rendered %s to %s (%dx%d)\n", *figure, *output, opts.Width, opts.Height)
}
