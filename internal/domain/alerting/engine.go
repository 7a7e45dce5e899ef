// Package alerting contiene el motor de reglas de alertas de inventario.
// Es lógica de dominio pura: sin I/O ni efectos secundarios, para poder
// testearla de forma exhaustiva con fechas controladas.
package alerting

import (
	"fmt"
	"time"

	"github.com/jhoicas/Restock-api/internal/domain/entity"
)

// Draft es una alerta candidata producida por la evaluación de reglas,
// aún sin persistir. El caso de uso la estampa con ItemID y LocationID.
type Draft struct {
	Title    string
	Message  string
	Type     string
	Severity string
}

// Horizonte en días de la regla "por vencer".
const expiringHorizonDays = 7

// Evaluate aplica las reglas en orden fijo (stock bajo → por vencer → vencido)
// sobre una instantánea del artículo y devuelve cero o más borradores de alerta.
// Las reglas son independientes: un mismo artículo puede producir varias alertas.
func Evaluate(item *entity.Item, now time.Time) []Draft {
	var drafts []Draft

	// Regla 1: stock bajo. Cantidad en o bajo el punto de reorden.
	if item.Quantity <= item.ReorderLevel {
		drafts = append(drafts, Draft{
			Title: "Low Stock Alert",
			Message: fmt.Sprintf("%s (%s) is below reorder level. Current quantity: %d, Reorder level: %d",
				item.Name, item.SKU, item.Quantity, item.ReorderLevel),
			Type:     entity.AlertTypeLowStock,
			Severity: entity.SeverityWarning,
		})
	}

	// Regla 2: por vencer. Días hasta el vencimiento con redondeo hacia arriba
	// (comparación de día fraccional): vence dentro de [0, 7] días.
	days := daysUntilExpiry(item.ExpiryDate, now)
	if days >= 0 && days <= expiringHorizonDays {
		severity := entity.SeverityWarning
		if days <= 1 {
			severity = entity.SeverityCritical
		}
		drafts = append(drafts, Draft{
			Title:    "Expiring Soon",
			Message:  expiringMessage(item, days),
			Type:     entity.AlertTypeExpiring,
			Severity: severity,
		})
	}

	// Regla 3: vencido. Comparación solo de fecha calendario (sin hora).
	// Puede solaparse con la regla 2 cerca del límite; redundancia aceptada.
	if dateOnly(item.ExpiryDate).Before(dateOnly(now)) {
		drafts = append(drafts, Draft{
			Title: "Item Expired",
			Message: fmt.Sprintf("%s (%s) has expired on %s",
				item.Name, item.SKU, item.ExpiryDate.Format("2006-01-02")),
			Type:     entity.AlertTypeExpired,
			Severity: entity.SeverityCritical,
		})
	}

	return drafts
}

// daysUntilExpiry calcula ceil((expiry - now) / 24h). Para duraciones negativas
// el truncamiento entero ya equivale al techo.
func daysUntilExpiry(expiry, now time.Time) int {
	const day = 24 * time.Hour
	d := expiry.Sub(now)
	days := int(d / day)
	if d%day > 0 {
		days++
	}
	return days
}

// expiringMessage arma el mensaje de "por vencer": caso especial para hoy
// y pluralización de day/days.
func expiringMessage(item *entity.Item, days int) string {
	date := item.ExpiryDate.Format("2006-01-02")
	if days == 0 {
		return fmt.Sprintf("%s (%s) expires today on %s", item.Name, item.SKU, date)
	}
	plural := "s"
	if days == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s (%s) expires in %d day%s on %s", item.Name, item.SKU, days, plural, date)
}

// dateOnly trunca un instante a su fecha calendario local (00:00).
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
