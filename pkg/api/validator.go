package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO.
// Обертка хендлеров вызывает Validate автоматически после Unmarshal.
type Validator interface {
	Validate() error
}

func (p MovePayload) Validate() error {
	switch p.Direction {
	case "north", "south", "east", "west":
		return nil
	default:
		return errors.New("direction must be north, south, east or west")
	}
}

func (p TargetPayload) Validate() error {
	if p.TargetID == "" && !p.Abstain {
		return errors.New("targetId is required")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemName == "" {
		return errors.New("itemName is required")
	}
	return nil
}

func (p AccusePayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}
