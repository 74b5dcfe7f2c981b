package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vivemap/internal/config"
	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/pkg/logger"
	"github.com/vivemap/internal/repository/static"
	"github.com/vivemap/internal/usecase"
	"github.com/vivemap/internal/usecase/dto"
)

// cliContext - общее состояние команд: конфиг, логгер, каталог
type cliContext struct {
	envFile string
	verbose bool

	cfg     *config.Config
	log     *zap.Logger
	catalog *static.Catalog
}

func newRootCmd() *cobra.Command {
	cc := &cliContext{}

	root := &cobra.Command{
		Use:   "vivemap",
		Short: "ViVeMap - каталог мест Huancayo Vive",
		Long: `vivemap работает с каталогом мест без HTTP сервера:
фильтрует места так же, как API, печатает метку фильтров и таксономию,
заливает каталог в PostgreSQL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cc.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cc.log != nil {
				_ = cc.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cc.envFile, "env-file", ".env", "путь к env-файлу с настройками")
	root.PersistentFlags().BoolVarP(&cc.verbose, "verbose", "v", false, "подробный лог")

	root.AddCommand(
		newPlacesCmd(cc),
		newSummaryCmd(cc),
		newCategoriesCmd(cc),
		newSeedCmd(cc),
	)

	return root
}

func (cc *cliContext) init() error {
	cfg, err := config.LoadFile(cc.envFile)
	if err != nil {
		return err
	}
	cc.cfg = cfg

	level := "warn"
	if cc.verbose {
		level = "debug"
	}
	cc.log, err = logger.NewWithService(level, "vivemap-cli")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cc.catalog, err = static.Load(cc.log)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	return nil
}

func (cc *cliContext) mapOptions() usecase.MapOptions {
	return usecase.MapOptions{
		AccessToken: cc.cfg.Map.AccessToken,
		Center:      domain.Point{Lat: cc.cfg.Map.CenterLat, Lon: cc.cfg.Map.CenterLon},
		Zoom:        cc.cfg.Map.Zoom,
		PlaceZoom:   cc.cfg.Map.PlaceZoom,
	}
}

// filterFlags - флаги, повторяющие поля состояния фильтров
type filterFlags struct {
	category      string
	subcategories []string
	timeFrame     string
	eventual      bool
	permanent     bool
	free          bool
	promotions    bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "категория (eventos, gastronomia, ...)")
	cmd.Flags().StringSliceVarP(&f.subcategories, "subcategories", "s", nil, "подкатегории через запятую")
	cmd.Flags().StringVarP(&f.timeFrame, "time-frame", "t", "", "временная рамка: "+strings.Join(domain.ValidTimeFrames(), ", "))
	cmd.Flags().BoolVar(&f.eventual, "eventual", false, "только эвентуальные")
	cmd.Flags().BoolVar(&f.permanent, "permanent", false, "только постоянные")
	cmd.Flags().BoolVar(&f.free, "free", false, "только бесплатные")
	cmd.Flags().BoolVar(&f.promotions, "promotions", false, "промоакции")
}

func (f *filterFlags) query() dto.PlacesQuery {
	return dto.PlacesQuery{
		Category:      f.category,
		Subcategories: f.subcategories,
		TimeFrame:     f.timeFrame,
		Eventual:      f.eventual,
		Permanent:     f.permanent,
		Free:          f.free,
		Promotions:    f.promotions,
	}
}

func newPlacesCmd(cc *cliContext) *cobra.Command {
	var (
		filters  filterFlags
		view     string
		lat, lon float64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "places",
		Short: "Отфильтровать места каталога",
		Example: `  vivemap places --category eventos --subcategories Conciertos
  vivemap places --free --view map --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := filters.query()
			q.View = view
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				q.Lat, q.Lon = &lat, &lon
			}

			uc := usecase.NewPlaceUseCase(cc.catalog, nil, cc.log, time.Minute, cc.mapOptions())
			resp, err := uc.ListPlaces(cmd.Context(), q)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writePlaces(cmd.OutOrStdout(), resp)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&view, "view", string(domain.ViewList), "представление: reels, list, map")
	cmd.Flags().Float64Var(&lat, "lat", 0, "широта пользователя")
	cmd.Flags().Float64Var(&lon, "lon", 0, "долгота пользователя")
	cmd.Flags().BoolVar(&asJSON, "json", false, "вывод в JSON")

	return cmd
}

func newSummaryCmd(cc *cliContext) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Напечатать метку фильтров",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewPlaceUseCase(cc.catalog, nil, cc.log, time.Minute, cc.mapOptions())
			resp, err := uc.Summary(filters.query())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Summary)
			return err
		},
	}

	filters.register(cmd)
	return cmd
}

func newCategoriesCmd(cc *cliContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Напечатать таксономию",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := usecase.NewCategoryUseCase(cc.catalog, cc.log).Categories()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			out := cmd.OutOrStdout()
			for _, c := range resp.Categories {
				names := make([]string, 0, len(c.Subcategories))
				for _, sc := range c.Subcategories {
					names = append(names, sc.Name)
				}
				if _, err := fmt.Fprintf(out, "%s %s (%s): %s\n", c.Icon, c.Name, c.ID, strings.Join(names, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "вывод в JSON")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePlaces(w io.Writer, resp *dto.PlacesResponse) error {
	if _, err := fmt.Fprintf(w, "%s (%d)\n", resp.Summary, resp.Total); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch resp.View {
	case domain.ViewMap:
		fmt.Fprintln(tw, "ID\tLAT\tLON\tLABEL")
		for _, m := range resp.Markers {
			fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%s\n", m.ID, m.Lat, m.Lon, m.Label)
		}
		if resp.Viewport != nil {
			fmt.Fprintf(tw, "\ncenter %.4f,%.4f zoom %.0f\n", resp.Viewport.Center.Lat, resp.Viewport.Center.Lon, resp.Viewport.Zoom)
		}
	case domain.ViewReels:
		fmt.Fprintln(tw, "ID\tNAME\tVIDEO")
		for _, it := range resp.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", it.ID, it.Name, it.VideoURL)
		}
	default:
		fmt.Fprintln(tw, "ID\tTYPE\tNAME\tCATEGORY\tSUBCATEGORY\tDISTANCE")
		for _, p := range resp.Places {
			distance := "-"
			if p.DistanceMeters != nil {
				distance = fmt.Sprintf("%.0f m", *p.DistanceMeters)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Type, p.Name, p.Category, p.Subcategory, distance)
		}
	}
	return tw.Flush()
}
