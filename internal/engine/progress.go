package engine

import (
	"fmt"

	"kittyhaven/internal/tasks"
)

func (s *Service) recordPetting() {
	s.quests.Update(tasks.DailyPet, 1)
	s.quests.Update(tasks.PetMaster, 1)
	s.quests.Update(tasks.Welcome, 1)
}

func (s *Service) recordFeeding() {
	s.quests.Update(tasks.DailyFeed, 1)
	s.quests.Update(tasks.WeeklyFeed, 1)
	s.quests.Update(tasks.FeedMaster, 1)
	s.quests.Update(tasks.FirstFeed, 1)
}

func (s *Service) recordPlay() {
	s.quests.Update(tasks.DailyPlay, 1)
	s.quests.Update(tasks.FirstToy, 1)
}

func (s *Service) recordTraining() {
	s.quests.Update(tasks.DailyTrain, 1)
}

func (s *Service) recordSignIn() {
	s.quests.Update(tasks.DailySignIn, 1)
	s.quests.Update(tasks.WeeklySignIn, 1)
}

// syncThresholds pushes household milestones into the threshold tasks.
func (s *Service) syncThresholds() {
	level, skill := 0, 0
	for _, p := range s.pets {
		level = max(level, p.Level)
		skill = max(skill, p.HighestSkillLevel())
	}
	s.quests.Advance(tasks.MainLevel, level)
	s.quests.Advance(tasks.SkilledCat, skill)
	s.quests.Advance(tasks.RichCat, s.purse.TotalEarned())
}

func (s *Service) taskCompleted(t tasks.Task) {
	s.log.Info("task completed", "task", t.ID, "type", t.Type)
	s.notify.Notify(fmt.Sprintf("%s %s complete! Claim %s", t.Icon, t.Name, t.Reward), KindSuccess)
}
