package engine

import (
	"sort"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
)

// publish рассылает персональные снимки всем подписанным игрокам
// этой сессии. Журнал очищается после рассылки.
func (gs *GameSession) publish() {
	if gs.service == nil {
		return
	}
	for _, p := range gs.roster {
		if gs.service.Hub.HasSubscriber(p.ID) {
			gs.service.Hub.SendTo(p.ID, *gs.BuildStateFor(p, false))
		}
	}
	gs.logs = nil
}

// publishGameOver - финальная рассылка: роли раскрыты всем.
func (gs *GameSession) publishGameOver() {
	if gs.service == nil {
		return
	}
	for _, p := range gs.roster {
		if gs.service.Hub.HasSubscriber(p.ID) {
			gs.service.Hub.SendTo(p.ID, *gs.BuildStateFor(p, true))
		}
	}
	gs.logs = nil
}

// BuildStateFor создает персональный снимок для одного наблюдателя.
// Туман войны персональный: в снимок попадают только комнаты из
// множества исследованных ЭТИМ игроком и только записи журнала,
// видимые ему; чужие перемещения карту наблюдателю не открывают.
func (gs *GameSession) BuildStateFor(observer *domain.Player, gameOver bool) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:       "UPDATE",
		Phase:      gs.phase.String(),
		Round:      gs.round,
		MyPlayerID: observer.ID,
		Logs:       gs.logsFor(observer.ID),
	}
	if gameOver {
		resp.Type = "GAME_OVER"
		resp.Winner = gs.winner
		resp.WinReason = gs.winReason
	}

	resp.Me = gs.buildSelfView(observer)

	if room := gs.dungeon.Room(observer.RoomID); room != nil {
		resp.Room = gs.buildRoomView(room, true)
	}

	// Исследованные комнаты в стабильном порядке.
	exploredIDs := make([]int, 0, len(observer.Explored))
	for id := range observer.Explored {
		exploredIDs = append(exploredIDs, id)
	}
	sort.Ints(exploredIDs)
	for _, id := range exploredIDs {
		if room := gs.dungeon.Room(id); room != nil {
			resp.Map = append(resp.Map, *gs.buildRoomView(room, id == observer.RoomID))
		}
	}

	for _, other := range gs.roster {
		if other.ID == observer.ID {
			continue
		}
		resp.Players = append(resp.Players, gs.buildPlayerView(observer, other, gameOver))
	}

	return resp
}

func (gs *GameSession) buildSelfView(p *domain.Player) *api.SelfView {
	view := &api.SelfView{
		ID:         p.ID,
		Name:       p.Name,
		Class:      p.Class,
		Role:       p.Role.String(),
		HP:         p.HP,
		MaxHP:      p.MaxHP,
		Stamina:    p.Stamina,
		MaxStamina: p.MaxStamina(),
		Alive:      p.Alive,
		Escaped:    p.Escaped,
		HasKey:     gs.keyHolderID == p.ID,
		Inventory:  itemViews(p.Inventory),
	}
	if len(p.Stash) > 0 {
		view.Stash = itemViews(p.Stash)
	}
	return view
}

// buildPlayerView - чужой игрок глазами наблюдателя. Роль скрыта,
// пока ее носитель жив и игра не окончена. Комнату и последнее
// действие видят только соседи по комнате.
func (gs *GameSession) buildPlayerView(observer, other *domain.Player, gameOver bool) api.PlayerView {
	view := api.PlayerView{
		ID:      other.ID,
		Name:    other.Name,
		Class:   other.Class,
		Alive:   other.Alive,
		Escaped: other.Escaped,
	}

	if !other.Alive || gameOver {
		view.Role = other.Role.String()
	}

	if other.InGame() && other.RoomID == observer.RoomID {
		view.RoomID = other.RoomID
		view.LastAction = other.LastAction
	}

	return view
}

// buildRoomView - DTO комнаты. Детали (монстр, жители) раскрываются
// только для комнаты, где наблюдатель стоит сейчас.
func (gs *GameSession) buildRoomView(room *domain.Room, current bool) *api.RoomView {
	view := &api.RoomView{
		ID:      room.ID,
		X:       room.X,
		Y:       room.Y,
		Name:    room.Name,
		Type:    string(room.Type),
		Cleared: room.Cleared,
	}

	exits := make([]string, 0, len(room.Links))
	for dir := range room.Links {
		exits = append(exits, dir.String())
	}
	sort.Strings(exits)
	view.Exits = exits

	if !current {
		return view
	}

	view.Description = room.Description
	for id := range room.PlayersInRoom {
		if p := gs.byID[id]; p != nil {
			view.Players = append(view.Players, p.Name)
		}
	}
	sort.Strings(view.Players)

	if room.Monster != nil {
		view.Monster = &api.MonsterView{
			Name:   room.Monster.Name,
			HP:     room.Monster.HP,
			MaxHP:  room.Monster.MaxHP,
			IsBoss: room.Monster.IsBoss,
			Alive:  room.Monster.Alive,
		}
	}

	return view
}

func itemViews(items []domain.LootItem) []api.ItemView {
	out := make([]api.ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, api.ItemView{Name: it.Name, Rarity: string(it.Rarity)})
	}
	return out
}
