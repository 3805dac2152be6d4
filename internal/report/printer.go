package report

import (
	"fmt"
	"io"
	"nearby-places-service/internal/domain"
)

const NotFoundMessage = "Could not find coordinates for the given address."

func PrintOrigin(w io.Writer, origin domain.Coordinates) error {
	_, err := fmt.Fprintf(w, "Address Coordinates: %s\n", origin)
	return err
}

// PrintRanked writes one line per place:
//
//	{title} - {address} - Distance: {miles} miles
//
// Places without coordinates print "Distance: unknown".
func PrintRanked(w io.Writer, ranked []domain.RankedPlace) error {
	for _, r := range ranked {
		if _, err := fmt.Fprintf(w, "%s - %s - Distance: %s\n",
			r.Place.DisplayTitle(), r.Place.DisplayAddress(), r.Distance); err != nil {
			return err
		}
	}
	return nil
}

func PrintNotFound(w io.Writer) error {
	_, err := fmt.Fprintln(w, NotFoundMessage)
	return err
}
