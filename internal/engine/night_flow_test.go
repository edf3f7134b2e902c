package engine

import (
	"encoding/json"
	"testing"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
)

func nightSession(t *testing.T, seed int64) (*GameSession, []*domain.Player) {
	t.Helper()
	roster := testRoster(4, 1) // p0 порченый, все в стартовой комнате
	gs, _ := newTestSession(t, roster, seed)
	gs.phase = domain.PhaseNight
	return gs, roster
}

func TestMurderEndsNight(t *testing.T) {
	// Перебираем сиды до удачного броска убийцы
	for seed := int64(1); seed < 60; seed++ {
		gs, roster := nightSession(t, seed)
		gs.Execute(domain.InternalCommand{Action: domain.ActionMurder, Token: roster[0].ID})

		dead := false
		for _, p := range roster[1:] {
			if !p.Alive {
				dead = true
			}
		}
		if !dead {
			// Промах тоже завершает ночь
			if gs.phase != domain.PhaseDiscussion {
				t.Fatalf("Seed %d: miss must still end the night, phase %s", seed, gs.phase)
			}
			continue
		}

		// 3 невинных было, 1 убит: 1 порченый против 2 - игра идет,
		// ночь завершена обсуждением
		if gs.phase != domain.PhaseDiscussion {
			t.Fatalf("Seed %d: expected discussion after a kill, got %s", seed, gs.phase)
		}

		found := false
		for _, e := range gs.evidence {
			if e.Type == "body_found" {
				found = true
			}
		}
		if !found {
			t.Error("Expected body_found evidence after a night kill")
		}
		return
	}
	t.Fatal("No successful murder in 60 seeds")
}

func TestMurderRejectedForInnocent(t *testing.T) {
	gs, roster := nightSession(t, 3)
	gs.Execute(domain.InternalCommand{Action: domain.ActionMurder, Token: roster[1].ID})

	if gs.phase != domain.PhaseNight {
		t.Errorf("Innocent's murder attempt must not end the night, phase %s", gs.phase)
	}
	for _, p := range roster {
		if !p.Alive {
			t.Errorf("Player %s died from a rejected command", p.ID)
		}
	}
}

func TestMurderRejectedByDay(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 3)
	gs.phase = domain.PhaseExploration

	gs.Execute(domain.InternalCommand{Action: domain.ActionMurder, Token: roster[0].ID})
	for _, p := range roster {
		if !p.Alive {
			t.Fatal("Murder must be impossible during the day")
		}
	}
}

func TestUseItemHeal(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 13)
	gs.phase = domain.PhaseExploration

	actor := roster[1]
	actor.HP = 10
	actor.AddItem(domain.NewLootItem("Лечебный эликсир", "heal:15", domain.RarityCommon))

	payload, _ := json.Marshal(api.ItemPayload{ItemName: "Лечебный эликсир"})
	gs.Execute(domain.InternalCommand{Action: domain.ActionUseItem, Token: actor.ID, Payload: payload})

	if actor.HP != 25 {
		t.Errorf("Expected 25 HP after the elixir, got %d", actor.HP)
	}
	if actor.FindItem("Лечебный эликсир") != -1 {
		t.Error("Consumed item still in inventory")
	}

	// Повторное использование - предмета уже нет
	gs.Execute(domain.InternalCommand{Action: domain.ActionUseItem, Token: actor.ID, Payload: payload})
	if actor.HP != 25 {
		t.Error("Missing item must not heal")
	}
}

func TestUseItemAccumulatesEffects(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 13)
	gs.phase = domain.PhaseExploration

	actor := roster[1]
	actor.AddItem(domain.NewLootItem("Древний артефакт", "reveal_all_roles:1;loot_bonus:10", domain.RarityLegendary))
	actor.AddItem(domain.NewLootItem("Амулет хранителя", "survive_attack:1", domain.RarityUncommon))

	payload, _ := json.Marshal(api.ItemPayload{ItemName: "Древний артефакт"})
	gs.Execute(domain.InternalCommand{Action: domain.ActionUseItem, Token: actor.ID, Payload: payload})
	if actor.LootBonus != 10 {
		t.Errorf("Expected loot bonus 10, got %d", actor.LootBonus)
	}

	payload, _ = json.Marshal(api.ItemPayload{ItemName: "Амулет хранителя"})
	gs.Execute(domain.InternalCommand{Action: domain.ActionUseItem, Token: actor.ID, Payload: payload})
	if actor.Protection != 1 {
		t.Errorf("Expected 1 protection charge, got %d", actor.Protection)
	}
}

func TestVoteHandlerRejectsSelfVote(t *testing.T) {
	roster := testRoster(4, 1)
	gs, _ := newTestSession(t, roster, 17)
	gs.phase = domain.PhaseVoting
	gs.votes = make(map[string]string)

	actor := roster[1]
	payload, _ := json.Marshal(api.TargetPayload{TargetID: actor.ID})
	gs.Execute(domain.InternalCommand{Action: domain.ActionVote, Token: actor.ID, Payload: payload})

	if _, ok := gs.votes[actor.ID]; ok {
		t.Error("Self-vote must not be recorded")
	}

	// Перголосование разрешено
	payload, _ = json.Marshal(api.TargetPayload{TargetID: "p2"})
	gs.Execute(domain.InternalCommand{Action: domain.ActionVote, Token: actor.ID, Payload: payload})
	payload, _ = json.Marshal(api.TargetPayload{TargetID: "p3"})
	gs.Execute(domain.InternalCommand{Action: domain.ActionVote, Token: actor.ID, Payload: payload})

	if gs.votes[actor.ID] != "p3" {
		t.Errorf("Expected re-vote to overwrite, got %q", gs.votes[actor.ID])
	}
	gs.scheduler.CancelAll()
}
