// Package store wires the entity repositories into the synchronization
// cache and exposes the handles controllers read and write through. The
// per-collection list rules below are the declarative patch table: they are
// the only place that knows which cached views must receive a newly created
// entity.
package store

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"belajaradmin/cache"
	"belajaradmin/models"
	"belajaradmin/repository"
)

var (
	Topics      *cache.Synced[models.Topic]
	Questions   *cache.Synced[models.Question]
	Plans       *cache.Synced[models.SubscriptionPlan]
	Parents     *cache.Synced[models.Parent]
	Students    *cache.Synced[models.Student]
	ShopItems   *cache.Synced[models.ShopItem]
	Inventories *cache.Synced[models.StudentInventory]
	Payments    *cache.Synced[models.Payment]

	// Admins and Activities bypass the cache: the auth path must always
	// see fresh credentials and the activity feed is append-only.
	Admins     repository.Repository[models.Admin]
	Activities repository.Repository[models.Activity]

	Cache *cache.Store
)

// Repositories carries one repository per entity; main builds either the
// GORM set or the in-memory set and injects it here.
type Repositories struct {
	Topics      repository.Repository[models.Topic]
	Questions   repository.Repository[models.Question]
	Plans       repository.Repository[models.SubscriptionPlan]
	Parents     repository.Repository[models.Parent]
	Students    repository.Repository[models.Student]
	ShopItems   repository.Repository[models.ShopItem]
	Inventories repository.Repository[models.StudentInventory]
	Payments    repository.Repository[models.Payment]
	Admins      repository.Repository[models.Admin]
	Activities  repository.Repository[models.Activity]
}

// Use installs the repositories behind the synchronization cache.
func Use(r Repositories, ttl time.Duration) {
	Cache = cache.NewStore(ttl)

	Topics = cache.NewSynced("topics", r.Topics, Cache, func(t models.Topic) []repository.Filter {
		return []repository.Filter{
			nil,
			{"subject": t.Subject},
			{"grade_level": itoa(uint(t.GradeLevel))},
		}
	})
	Questions = cache.NewSynced("questions", r.Questions, Cache, func(q models.Question) []repository.Filter {
		return []repository.Filter{
			nil,
			{"topic_id": itoa(q.TopicID)},
		}
	})
	Plans = cache.NewSynced[models.SubscriptionPlan]("subscription-plans", r.Plans, Cache, nil)
	Parents = cache.NewSynced[models.Parent]("parents", r.Parents, Cache, nil)
	Students = cache.NewSynced("students", r.Students, Cache, func(s models.Student) []repository.Filter {
		return []repository.Filter{
			nil,
			{"parent_id": itoa(s.ParentID)},
		}
	})
	ShopItems = cache.NewSynced("shop-items", r.ShopItems, Cache, func(i models.ShopItem) []repository.Filter {
		return []repository.Filter{
			nil,
			{"type": i.Type},
		}
	})
	Inventories = cache.NewSynced("inventories", r.Inventories, Cache, func(inv models.StudentInventory) []repository.Filter {
		return []repository.Filter{
			{"student_id": itoa(inv.StudentID)},
		}
	})
	Payments = cache.NewSynced[models.Payment]("payments", r.Payments, Cache, nil)

	Admins = r.Admins
	Activities = r.Activities
}

// GormRepositories builds the production repository set.
func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Topics:      repository.NewGorm[models.Topic](db, "order_index asc"),
		Questions:   repository.NewGorm[models.Question](db, "id asc"),
		Plans:       repository.NewGorm[models.SubscriptionPlan](db, "price asc"),
		Parents:     repository.NewGorm[models.Parent](db, "created_at desc"),
		Students:    repository.NewGorm[models.Student](db, "created_at desc"),
		ShopItems:   repository.NewGorm[models.ShopItem](db, "cost_coins asc"),
		Inventories: repository.NewGorm[models.StudentInventory](db, "acquired_at desc"),
		Payments:    repository.NewGorm[models.Payment](db, "created_at desc"),
		Admins:      repository.NewGorm[models.Admin](db, "id asc"),
		Activities:  repository.NewGorm[models.Activity](db, "created_at desc"),
	}
}

// MemoryRepositories builds the in-memory set used by tests and seed mode.
func MemoryRepositories() Repositories {
	return Repositories{
		Topics: repository.NewMemory(func(t models.Topic, f repository.Filter) bool {
			if v, ok := f["subject"]; ok && t.Subject != v {
				return false
			}
			if v, ok := f["grade_level"]; ok && itoa(uint(t.GradeLevel)) != v {
				return false
			}
			return true
		}, func(t *models.Topic, id uint) { t.ID = id }),
		Questions: repository.NewMemory(func(q models.Question, f repository.Filter) bool {
			if v, ok := f["topic_id"]; ok && itoa(q.TopicID) != v {
				return false
			}
			return true
		}, func(q *models.Question, id uint) { q.ID = id }),
		Plans: repository.NewMemory[models.SubscriptionPlan](nil,
			func(p *models.SubscriptionPlan, id uint) { p.ID = id }),
		Parents: repository.NewMemory(func(p models.Parent, f repository.Filter) bool {
			if v, ok := f["email"]; ok && p.Email != v {
				return false
			}
			return true
		}, func(p *models.Parent, id uint) { p.ID = id }),
		Students: repository.NewMemory(func(s models.Student, f repository.Filter) bool {
			if v, ok := f["parent_id"]; ok && itoa(s.ParentID) != v {
				return false
			}
			if v, ok := f["username"]; ok && s.Username != v {
				return false
			}
			return true
		}, func(s *models.Student, id uint) { s.ID = id }),
		ShopItems: repository.NewMemory(func(i models.ShopItem, f repository.Filter) bool {
			if v, ok := f["type"]; ok && i.Type != v {
				return false
			}
			return true
		}, func(i *models.ShopItem, id uint) { i.ID = id }),
		Inventories: repository.NewMemory(func(inv models.StudentInventory, f repository.Filter) bool {
			if v, ok := f["student_id"]; ok && itoa(inv.StudentID) != v {
				return false
			}
			return true
		}, func(inv *models.StudentInventory, id uint) { inv.ID = id }),
		Payments: repository.NewMemory(func(p models.Payment, f repository.Filter) bool {
			if v, ok := f["status"]; ok && p.Status != v {
				return false
			}
			return true
		}, func(p *models.Payment, id uint) { p.ID = id }),
		Admins: repository.NewMemory(func(a models.Admin, f repository.Filter) bool {
			if v, ok := f["email"]; ok && a.Email != v {
				return false
			}
			return true
		}, func(a *models.Admin, id uint) { a.ID = id }),
		Activities: repository.NewMemory[models.Activity](nil,
			func(a *models.Activity, id uint) { a.ID = id }),
	}
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
