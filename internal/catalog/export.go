package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/farellandr/eventportal/internal/models"
)

var eventCSVHeader = []string{"Titre", "Date", "Lieu", "Catégorie", "Participants", "Prix", "Statut", "Revenu"}

// WriteEventsCSV writes one row per event, in the given order.
func WriteEventsCSV(w io.Writer, events []models.Event, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(eventCSVHeader); err != nil {
		return err
	}
	for _, e := range events {
		row := []string{
			e.Title,
			FormatShortDate(e.Date.Time),
			e.Location,
			CategoryInfo(e.Category).Label,
			fmt.Sprintf("%d/%d", e.CurrentParticipants, e.MaxParticipants),
			e.Price.StringFixed(2) + "€",
			StatusInfo(Classify(e, now)).Label,
			Revenue(e).StringFixed(2) + "€",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var registrationCSVHeader = []string{"Nom", "Email", "Téléphone", "Date d'inscription", "Statut"}

func WriteRegistrationsCSV(w io.Writer, regs []models.Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(registrationCSVHeader); err != nil {
		return err
	}
	for _, r := range regs {
		date := ""
		if !r.RegistrationDate.IsZero() {
			date = r.RegistrationDate.Format("02/01/2006 15:04")
		}
		row := []string{r.ParticipantName, r.ParticipantEmail, r.ParticipantPhone, date, r.Status}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
