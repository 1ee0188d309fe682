package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/FlorianRuen/langs-usage-chart/model"
	"github.com/FlorianRuen/langs-usage-chart/service"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newRenderCommand run the chart pipeline once and write the svg without starting the server
// flags use the same names and fallbacks than the query string of the http route
func newRenderCommand() *cobra.Command {
	var (
		query  model.ChartQuery
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <username> <chartType>",
		Short: "Render the languages usage chart of a github user",
		Long: `Render the languages usage chart of a github user.

Chart type is one of pie, bar or donut. The svg is written on the standard
output unless --output is set. Logs are written on the standard error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, langsService, shutdownTracing, err := bootstrap(os.Stderr)
			if err != nil {
				return err
			}

			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					log.WithError(err).Warning("unable to flush traces")
				}
			}()

			if output == "" {
				return runRender(cmd.Context(), cmd.OutOrStdout(), langsService, args[0], args[1], query)
			}

			return renderToFile(cmd.Context(), output, langsService, args[0], args[1], query)
		},
	}

	cmd.Flags().StringVar(&query.BorderColor, "border-color", "", "border color, hex value with or without #")
	cmd.Flags().StringVar(&query.BackgroundColor, "background-color", "", "background color, hex value with or without #")
	cmd.Flags().StringVar(&query.TitleColor, "title-color", "", "title color, hex value with or without #")
	cmd.Flags().StringVar(&query.TextColor, "text-color", "", "legend text color, hex value with or without #")
	cmd.Flags().StringVar(&query.HoleRadiusPercentage, "hole-radius-percentage", strconv.Itoa(model.DefaultHoleRadiusPercentage), "donut hole radius, percentage of the outer radius in [0, 100)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, standard output when empty")

	return cmd
}

func runRender(ctx context.Context, out io.Writer, langsService service.LangsService, username string, rawChartType string, query model.ChartQuery) error {
	chartType, err := model.ParseChartType(rawChartType)
	if err != nil {
		return err
	}

	svg, err := langsService.GenerateChart(ctx, username, chartType, query.ToChartOptions(chartType))
	if err != nil {
		return err
	}

	if _, err := io.WriteString(out, svg); err != nil {
		return fmt.Errorf("unable to write chart: %w", err)
	}

	return nil
}

// renderToFile only touch the output file once the chart is rendered
// a failed render keeps any previous file as is
func renderToFile(ctx context.Context, output string, langsService service.LangsService, username string, rawChartType string, query model.ChartQuery) error {
	var svg bytes.Buffer

	if err := runRender(ctx, &svg, langsService, username, rawChartType, query); err != nil {
		return err
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}

	if _, err := file.Write(svg.Bytes()); err != nil {
		_ = file.Close()
		return fmt.Errorf("unable to write output file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close output file: %w", err)
	}

	return nil
}
