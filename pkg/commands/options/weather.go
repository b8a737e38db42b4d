package options

import (
	"github.com/spf13/cobra"
)

// WeatherOptions controls the optional weather lookup at save time.
// The coordinate flags stand in for the browser's geolocation prompt.
type WeatherOptions struct {
	Fetch bool
	Lat   float64
	Lon   float64
}

func AddWeatherArgs(cmd *cobra.Command, o *WeatherOptions) {
	cmd.Flags().BoolVar(&o.Fetch, "weather", false,
		"Attach current weather to the entry.")
	cmd.Flags().Float64Var(&o.Lat, "lat", 0,
		"Latitude for the weather lookup.")
	cmd.Flags().Float64Var(&o.Lon, "lon", 0,
		"Longitude for the weather lookup.")
}
