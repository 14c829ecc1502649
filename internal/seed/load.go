package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ehr/opsboard/internal/domain/chat"
	"github.com/ehr/opsboard/internal/domain/inventory"
	"github.com/ehr/opsboard/internal/domain/patient"
	"github.com/ehr/opsboard/internal/domain/scheduling"
	"github.com/ehr/opsboard/internal/domain/task"
	"github.com/ehr/opsboard/internal/platform/db"
)

// Counts reports how many records Load wrote per collection.
type Counts struct {
	Patients     int
	Appointments int
	Items        int
	Tasks        int
	Channels     int
	Messages     int
}

// Load inserts every dataset into PostgreSQL in one transaction. Loading
// twice fails on the primary keys and leaves the database unchanged.
func Load(ctx context.Context, b db.Beginner, logger zerolog.Logger) (Counts, error) {
	var n Counts
	err := db.WithTx(ctx, b, func(q db.Querier) error {
		patients := patient.NewPatientRepoPG(q)
		for _, p := range Patients() {
			if err := patients.Create(ctx, p); err != nil {
				return fmt.Errorf("seed patient %s: %w", p.ID, err)
			}
			n.Patients++
		}

		appts := scheduling.NewAppointmentRepoPG(q)
		for _, a := range Appointments() {
			if err := appts.Create(ctx, a); err != nil {
				return fmt.Errorf("seed appointment %s: %w", a.ID, err)
			}
			n.Appointments++
		}

		items := inventory.NewItemRepoPG(q)
		for _, it := range InventoryItems() {
			if err := items.Create(ctx, it); err != nil {
				return fmt.Errorf("seed inventory item %s: %w", it.ID, err)
			}
			n.Items++
		}

		tasks := task.NewTaskRepoPG(q)
		for _, t := range Tasks() {
			if err := tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("seed task %s: %w", t.ID, err)
			}
			n.Tasks++
		}

		chats := chat.NewChatRepoPG(q)
		for _, c := range Channels() {
			if err := chats.CreateChannel(ctx, c); err != nil {
				return fmt.Errorf("seed channel %s: %w", c.ID, err)
			}
			n.Channels++
		}
		for _, m := range Messages() {
			if err := chats.AppendMessage(ctx, m); err != nil {
				return fmt.Errorf("seed message %s: %w", m.ID, err)
			}
			n.Messages++
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}
	logger.Info().
		Int("patients", n.Patients).
		Int("appointments", n.Appointments).
		Int("inventory_items", n.Items).
		Int("tasks", n.Tasks).
		Int("channels", n.Channels).
		Int("messages", n.Messages).
		Msg("seed data loaded")
	return n, nil
}
