package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionSearch
	ActionFight
	ActionCollect
	ActionDisarm
	ActionTakeKey
	ActionEscape
	ActionUseItem
	ActionVote
	ActionAccuse
	ActionMurder
	ActionWait
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":     ActionInit,
	"MOVE":     ActionMove,
	"SEARCH":   ActionSearch,
	"FIGHT":    ActionFight,
	"COLLECT":  ActionCollect,
	"DISARM":   ActionDisarm,
	"TAKE_KEY": ActionTakeKey,
	"ESCAPE":   ActionEscape,
	"USE_ITEM": ActionUseItem,
	"VOTE":     ActionVote,
	"ACCUSE":   ActionAccuse,
	"MURDER":   ActionMurder,
	"WAIT":     ActionWait,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:    "INIT",
	ActionMove:    "MOVE",
	ActionSearch:  "SEARCH",
	ActionFight:   "FIGHT",
	ActionCollect: "COLLECT",
	ActionDisarm:  "DISARM",
	ActionTakeKey: "TAKE_KEY",
	ActionEscape:  "ESCAPE",
	ActionUseItem: "USE_ITEM",
	ActionVote:    "VOTE",
	ActionAccuse:  "ACCUSE",
	ActionMurder:  "MURDER",
	ActionWait:    "WAIT",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Нечувствительно к регистру для надежности
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
