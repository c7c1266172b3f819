package inmemory_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"testing"

	"github.com/cafes-service/cmd/api/cafe"
	"github.com/cafes-service/cmd/api/inmemory"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

var ctx context.Context = context.Background()

func newStore() *inmemory.InMemoryStore {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}
	return store
}

func newCafe(name string) cafe.Cafe {
	return cafe.Cafe{
		Name:        name,
		MapURL:      "https://goo.gl/maps/abc",
		ImgURL:      "https://example.com/cafe.jpg",
		Location:    "Bermondsey",
		HasToilet:   true,
		Seats:       "31-40",
		CoffeePrice: "£2.75",
	}
}

func TestCreateCafe(t *testing.T) {
	store := newStore()

	t.Run("creates a cafe without errors", func(t *testing.T) {
		is := is.New(t)

		c := newCafe("A new cafe")
		created, err := store.CreateCafe(ctx, c)
		is.NoErr(err)
		is.Equal(created.ID, int64(1))

		c.ID = created.ID
		is.Equal(created, c)

		fetched, err := store.GetCafeByID(ctx, created.ID)
		is.NoErr(err)
		is.Equal(fetched, c)
	})

	t.Run("ids are unique and increasing", func(t *testing.T) {
		is := is.New(t)

		a, err := store.CreateCafe(ctx, newCafe("first id"))
		is.NoErr(err)
		b, err := store.CreateCafe(ctx, newCafe("second id"))
		is.NoErr(err)
		is.True(b.ID > a.ID)
	})

	t.Run("a duplicate name is rejected and no second row exists", func(t *testing.T) {
		is := is.New(t)

		_, err := store.CreateCafe(ctx, newCafe("Duplicated"))
		is.NoErr(err)

		_, err = store.CreateCafe(ctx, newCafe("Duplicated"))
		is.True(errors.Is(err, cafe.ErrResponseCafeNameConflict))

		cafes, err := store.ListCafes(ctx)
		is.NoErr(err)
		count := 0
		for _, c := range cafes {
			if c.Name == "Duplicated" {
				count++
			}
		}
		is.Equal(count, 1)
	})
}

func TestGetCafe(t *testing.T) {
	store := newStore()

	t.Run("Gets an non existing cafe should return a not found error", func(t *testing.T) {
		is := is.New(t)

		returned, err := store.GetCafeByID(ctx, 999)
		is.True(errors.Is(err, cafe.ErrResponseCafeNotFound))
		is.Equal(returned, cafe.Cafe{})
	})
}

func TestUpdateCafe(t *testing.T) {
	store := newStore()

	t.Run("updates every field of a cafe", func(t *testing.T) {
		is := is.New(t)

		created, err := store.CreateCafe(ctx, newCafe("A cafe to be updated"))
		is.NoErr(err)

		created.Name = "The cafe is now updated"
		created.MapURL = "https://goo.gl/maps/updated"
		created.HasToilet = false
		created.HasWifi = true
		created.Seats = "50+"
		created.CoffeePrice = "£3.00"

		updated, err := store.UpdateCafe(ctx, created)
		is.NoErr(err)
		is.Equal(updated, created)

		fetched, err := store.GetCafeByID(ctx, created.ID)
		is.NoErr(err)
		is.Equal(fetched, created)
	})

	t.Run("the old name is free again after a rename", func(t *testing.T) {
		is := is.New(t)

		created, err := store.CreateCafe(ctx, newCafe("Old name"))
		is.NoErr(err)

		created.Name = "New name"
		_, err = store.UpdateCafe(ctx, created)
		is.NoErr(err)

		_, err = store.CreateCafe(ctx, newCafe("Old name"))
		is.NoErr(err)
	})

	t.Run("updating with the same values is idempotent", func(t *testing.T) {
		is := is.New(t)

		created, err := store.CreateCafe(ctx, newCafe("Unchanged"))
		is.NoErr(err)

		updated, err := store.UpdateCafe(ctx, created)
		is.NoErr(err)
		is.Equal(updated, created)
	})

	t.Run("taking another cafe's name is a conflict and changes nothing", func(t *testing.T) {
		is := is.New(t)

		first, err := store.CreateCafe(ctx, newCafe("Taken"))
		is.NoErr(err)
		second, err := store.CreateCafe(ctx, newCafe("Taker"))
		is.NoErr(err)

		renamed := second
		renamed.Name = "Taken"
		_, err = store.UpdateCafe(ctx, renamed)
		is.True(errors.Is(err, cafe.ErrResponseCafeNameConflict))

		fetched, err := store.GetCafeByID(ctx, second.ID)
		is.NoErr(err)
		is.Equal(fetched, second)
		fetched, err = store.GetCafeByID(ctx, first.ID)
		is.NoErr(err)
		is.Equal(fetched, first)
	})

	t.Run("Updates an non existing cafe should return a not found error", func(t *testing.T) {
		is := is.New(t)

		missing := newCafe("Not stored")
		missing.ID = 999
		_, err := store.UpdateCafe(ctx, missing)
		is.True(errors.Is(err, cafe.ErrResponseCafeNotFound))
	})
}

func TestDeleteCafe(t *testing.T) {
	store := newStore()

	t.Run("deleted cafe is not found anymore", func(t *testing.T) {
		is := is.New(t)

		created, err := store.CreateCafe(ctx, newCafe("To be deleted"))
		is.NoErr(err)

		err = store.DeleteCafe(ctx, created.ID)
		is.NoErr(err)

		_, err = store.GetCafeByID(ctx, created.ID)
		is.True(errors.Is(err, cafe.ErrResponseCafeNotFound))

		// Its name can be used again.
		_, err = store.CreateCafe(ctx, newCafe("To be deleted"))
		is.NoErr(err)
	})

	t.Run("deleting an unknown id is not found", func(t *testing.T) {
		is := is.New(t)

		err := store.DeleteCafe(ctx, 999)
		is.True(errors.Is(err, cafe.ErrResponseCafeNotFound))
	})
}

func TestListCafes(t *testing.T) {
	store := newStore()

	t.Run("List cafes without errors even if there is no cafes in the database", func(t *testing.T) {
		is := is.New(t)

		cafes, err := store.ListCafes(ctx)
		is.NoErr(err)
		is.Equal(cafes, []cafe.Cafe{})
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		is := is.New(t)

		var want []cafe.Cafe
		for i := 0; i < 300; i++ {
			created, err := store.CreateCafe(ctx, newCafe(fmt.Sprintf("Cafe number %03d", i)))
			is.NoErr(err)
			want = append(want, created)
		}

		cafes, err := store.ListCafes(ctx)
		is.NoErr(err)
		is.Equal(cafes, want)
	})
}

func TestCreateFromValidatedForm(t *testing.T) {
	store := newStore()

	t.Run("every submitted value is stored after the price transform", func(t *testing.T) {
		is := is.New(t)

		in, errs := cafe.Validate(cafe.Form{
			Name:        "Form cafe",
			MapURL:      "https://goo.gl/maps/form",
			ImgURL:      "https://example.com/form.jpg",
			Location:    "Brixton",
			Seats:       "0-10",
			CoffeePrice: "2.5",
		})
		is.Equal(len(errs), 0)

		svc := cafe.NewService(store, nil, 0)
		created, err := svc.CreateCafe(ctx, in)
		is.NoErr(err)

		fetched, err := store.GetCafeByID(ctx, created.ID)
		is.NoErr(err)
		is.Equal(fetched.Name, in.Name)
		is.Equal(fetched.MapURL, in.MapURL)
		is.Equal(fetched.ImgURL, in.ImgURL)
		is.Equal(fetched.Location, in.Location)
		is.Equal(fetched.Seats, in.Seats)
		is.True(!fetched.HasSockets && !fetched.HasToilet && !fetched.HasWifi && !fetched.CanTakeCalls)
		is.Equal(fetched.CoffeePrice, "£2.50")

		price, err := cafe.ParsePrice(fetched.CoffeePrice)
		is.NoErr(err)
		is.True(price.Equal(decimal.RequireFromString("2.5")))
	})
}

func TestConcurrentCreates(t *testing.T) {
	store := newStore()

	t.Run("concurrent creates with one name store a single row", func(t *testing.T) {
		is := is.New(t)

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.CreateCafe(ctx, newCafe("Contended"))
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		is.Equal(succeeded, 1)
		cafes, err := store.ListCafes(ctx)
		is.NoErr(err)
		is.Equal(len(cafes), 1)
	})
}
