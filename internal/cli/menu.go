// Package cli implements the numbered terminal menu of the reservation console.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/reservation-console/internal/application"
	"github.com/example/reservation-console/internal/booking"
	"github.com/example/reservation-console/internal/render"
)

const menuText = `
Menu principal:
1. Lister toutes les salles
2. Ajouter une salle
3. Supprimer une salle
4. Créer une réservation
5. Annuler une réservation
6. Lister toutes les réservations
7. Exporter les réservations en JSON
8. Exporter les réservations en CSV
9. Lister les salles disponibles
10. Visualiser les réservations pour une salle et une date
11. Quitter
`

// Menu reads choices from an input stream and drives a console whose view
// writes to the same output.
type Menu struct {
	console   *application.Console
	scanner   *bufio.Scanner
	out       io.Writer
	exportDir string
	logger    *slog.Logger
}

// Option customises a Menu.
type Option func(*Menu)

// WithExportDir sets the directory export files are written to.
func WithExportDir(dir string) Option {
	return func(m *Menu) {
		if strings.TrimSpace(dir) != "" {
			m.exportDir = dir
		}
	}
}

// WithLogger sets the menu logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New builds a menu over console. The console view is expected to print to
// out, typically a render.TextTables.
func New(console *application.Console, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		console:   console,
		scanner:   bufio.NewScanner(in),
		out:       out,
		exportDir: ".",
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run loops over menu choices until the user quits, the input ends or ctx is
// cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, menuText)
		choice, ok := m.prompt("Veuillez choisir une option: ")
		if !ok {
			return m.scanner.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.console.ListRooms(ctx)
		case "2":
			ok = m.addRoom(ctx)
		case "3":
			ok = m.deleteRow(ctx, "Entrez l'ID de la salle à supprimer: ",
				"Erreur: L'ID de la salle doit être un nombre.", m.console.RoomActions().Delete)
		case "4":
			ok = m.createReservation(ctx)
		case "5":
			ok = m.deleteRow(ctx, "Entrez l'ID de la réservation à annuler: ",
				"Erreur: L'ID de la réservation doit être un nombre.", m.console.ReservationActions().Delete)
		case "6":
			m.console.ListReservations(ctx)
		case "7":
			m.export(ctx, booking.ExportJSON)
		case "8":
			m.export(ctx, booking.ExportCSV)
		case "9":
			ok = m.availableRooms(ctx)
		case "10":
			ok = m.roomAgenda(ctx)
		case "11":
			fmt.Fprintln(m.out, "Au revoir !")
			return nil
		default:
			fmt.Fprintln(m.out, "Option non valide.")
		}
		if !ok {
			return m.scanner.Err()
		}
	}
}

// prompt prints label and reads one line. It reports false once the input
// is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}

func (m *Menu) prompts(labels ...string) ([]string, bool) {
	values := make([]string, 0, len(labels))
	for _, label := range labels {
		value, ok := m.prompt(label)
		if !ok {
			return nil, false
		}
		values = append(values, value)
	}
	return values, true
}

func (m *Menu) addRoom(ctx context.Context) bool {
	values, ok := m.prompts("Entrez le nom de la salle: ", "Entrez la capacité de la salle: ")
	if !ok {
		return false
	}
	m.console.RoomActions().Create(ctx, values[0], values[1])
	return true
}

func (m *Menu) createReservation(ctx context.Context) bool {
	values, ok := m.prompts(
		"Entrez l'ID de la salle: ",
		"Entrez la date de la réservation (YYYY-MM-DD): ",
		"Entrez l'heure de début (HH:MM): ",
		"Entrez l'heure de fin (HH:MM): ",
	)
	if !ok {
		return false
	}
	m.console.ReservationActions().Create(ctx, values[0], values[1], values[2], values[3])
	return true
}

func (m *Menu) deleteRow(ctx context.Context, label, invalid string, remove func(context.Context, int)) bool {
	if remove == nil {
		fmt.Fprintln(m.out, "La suppression est désactivée.")
		return true
	}
	raw, ok := m.prompt(label)
	if !ok {
		return false
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(m.out, invalid)
		return true
	}
	remove(ctx, id)
	return true
}

func (m *Menu) export(ctx context.Context, format string) {
	path := filepath.Join(m.exportDir, "reservations."+format)
	if err := m.writeExport(ctx, format, path); err != nil {
		fmt.Fprintf(m.out, "Erreur lors de l'exportation des réservations: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Réservations exportées au format %s avec succès (%s).\n", format, path)
}

func (m *Menu) writeExport(ctx context.Context, format, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil {
				m.logger.WarnContext(ctx, "failed to remove partial export", "path", path, "error", rerr)
			}
		}
	}()
	return m.console.ExportReservations(ctx, format, file)
}

func (m *Menu) availableRooms(ctx context.Context) bool {
	values, ok := m.prompts(
		"Entrez la date (YYYY-MM-DD): ",
		"Entrez l'heure de début (HH:MM): ",
		"Entrez l'heure de fin (HH:MM): ",
	)
	if !ok {
		return false
	}
	rooms, err := m.console.AvailableRooms(ctx, values[0], values[1], values[2])
	if err != nil {
		fmt.Fprintf(m.out, "Erreur lors de la récupération des salles disponibles: %v\n", err)
		return true
	}
	fmt.Fprintln(m.out, "\nSalles disponibles:")
	render.WriteRooms(m.out, rooms)
	return true
}

func (m *Menu) roomAgenda(ctx context.Context) bool {
	raw, ok := m.prompt("Entrez l'ID de la salle: ")
	if !ok {
		return false
	}
	roomID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(m.out, "Entrée non valide pour l'ID de la salle.")
		return true
	}
	date, ok := m.prompt("Entrez la date (YYYY-MM-DD): ")
	if !ok {
		return false
	}

	agenda, err := m.console.RoomAgenda(ctx, roomID, strings.TrimSpace(date))
	if err != nil {
		fmt.Fprintf(m.out, "Erreur lors de l'affichage des réservations: %v\n", err)
		return true
	}
	fmt.Fprintln(m.out, "\nRéservations pour la salle et la date choisies:")
	render.WriteReservations(m.out, agenda)
	return true
}
