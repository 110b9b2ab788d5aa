package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-timekeeper/internal/clock"
)

// createFormatCommand создает команду format с привязкой к экземпляру приложения
func (app *Application) createFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [seconds]",
		Short: "Convert seconds to a clock string",
		Long:  `Convert a number of seconds to HH:MM:SS or MM:SS.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := app.layoutFlag(cmd)
			if err != nil {
				return err
			}
			return app.format(args[0], layout)
		},
	}
	cmd.Flags().StringP("layout", "l", "", "clock layout: hms or ms")
	return cmd
}

// createParseCommand создает команду parse с привязкой к экземпляру приложения
func (app *Application) createParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [clock]",
		Short: "Convert a clock string to seconds",
		Long:  `Convert HH:MM:SS or MM:SS to a number of seconds. Missing leading fields of HH:MM:SS are zero.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := app.layoutFlag(cmd)
			if err != nil {
				return err
			}
			return app.parse(args[0], layout)
		},
	}
	cmd.Flags().StringP("layout", "l", "", "clock layout: hms or ms")
	return cmd
}

func (app *Application) format(arg string, layout clock.Layout) error {
	seconds, err := parseSecondsArg(arg)
	if err != nil {
		return err
	}

	s, err := app.Formatter.Format(seconds, layout)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func (app *Application) parse(arg string, layout clock.Layout) error {
	seconds, err := app.Formatter.Parse(arg, layout)
	if err != nil {
		return err
	}
	fmt.Println(seconds)
	return nil
}

// parseSecondsArg разбирает целое число секунд
func parseSecondsArg(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	seconds, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &clock.DurationError{Value: arg}
	}
	return seconds, nil
}
