package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/atelier-dev/atelier-store/internal/state"
	"github.com/atelier-dev/atelier-store/pkg/catalog"
	"github.com/atelier-dev/atelier-store/pkg/remote"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	addr := os.Getenv("ATELIER_API_URL")
	if addr == "" {
		addr = "http://localhost:7090"
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).With().Timestamp().Logger()

	store := state.New(catalog.Seed(), state.Options{
		Remote: remote.New(addr),
		Logger: &logger,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := store.Bootstrap(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "API offline, working from seed data")
	}

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "LIST":
		if len(args) < 1 {
			log.Fatal("Usage: atelier LIST <artworks|books|journal|cart|logs|chat>")
		}
		switch strings.ToLower(args[0]) {
		case "artworks":
			printJSON(store.Artworks())
		case "books":
			printJSON(store.Books())
		case "journal":
			printJSON(store.Journal())
		case "cart":
			printJSON(store.Cart())
			fmt.Printf("Total: %.2f\n", store.CartTotal())
		case "logs":
			printJSON(store.Logs())
		case "chat":
			printJSON(store.Chat())
		default:
			log.Fatalf("Unknown collection: %s", args[0])
		}

	case "ADD-ARTWORK":
		if len(args) < 1 {
			log.Fatal("Usage: atelier ADD-ARTWORK <title> [year]")
		}
		art := catalog.Artwork{ID: uuid.NewString(), Title: args[0]}
		if len(args) > 1 {
			year, err := strconv.Atoi(args[1])
			if err != nil {
				log.Fatalf("Invalid year: %s", args[1])
			}
			art.Year = year
		}
		store.AddArtwork(art)
		fmt.Println("Added artwork", art.ID)

	case "ADD-BOOK":
		if len(args) < 2 {
			log.Fatal("Usage: atelier ADD-BOOK <title> <price>")
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			log.Fatalf("Invalid price: %s", args[1])
		}
		book := catalog.Book{ID: uuid.NewString(), Title: args[0], Price: price}
		store.AddBook(book)
		fmt.Println("Added book", book.ID)

	case "ADD-POST":
		if len(args) < 1 {
			log.Fatal("Usage: atelier ADD-POST <title> [tag,tag,...]")
		}
		post := catalog.JournalPost{ID: uuid.NewString(), Title: args[0], Date: time.Now().Format("2006-01-02")}
		if len(args) > 1 {
			post.Tags = strings.Split(args[1], ",")
		}
		store.AddJournal(post)
		fmt.Println("Published post", post.ID)

	case "REMOVE":
		if len(args) < 2 {
			log.Fatal("Usage: atelier REMOVE <artwork|book|journal> <id>")
		}
		switch strings.ToLower(args[0]) {
		case "artwork":
			store.RemoveArtwork(args[1])
		case "book":
			store.RemoveBook(args[1])
		case "journal":
			store.RemoveJournal(args[1])
		default:
			log.Fatalf("Unknown kind: %s", args[0])
		}
		fmt.Println("OK")

	case "CART-ADD":
		if len(args) < 1 {
			log.Fatal("Usage: atelier CART-ADD <bookID>")
		}
		var found bool
		for _, book := range store.Books() {
			if book.ID == args[0] {
				store.AddToCart(book)
				found = true
				break
			}
		}
		if !found {
			log.Fatalf("No book with ID %s", args[0])
		}
		printJSON(store.Cart())
		fmt.Printf("Total: %.2f\n", store.CartTotal())

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}

	// Let in-flight remote writes finish before the process exits.
	store.Wait()

	for _, n := range store.Notifications() {
		fmt.Printf("[%s] %s\n", n.Severity, n.Message)
	}
}

func printUsage() {
	fmt.Println("Atelier CLI - client for the atelier catalog")
	fmt.Println("\nUsage:")
	fmt.Println("  atelier LIST <artworks|books|journal|cart|logs|chat>")
	fmt.Println("  atelier ADD-ARTWORK <title> [year]")
	fmt.Println("  atelier ADD-BOOK <title> <price>")
	fmt.Println("  atelier ADD-POST <title> [tag,tag,...]")
	fmt.Println("  atelier REMOVE <artwork|book|journal> <id>")
	fmt.Println("  atelier CART-ADD <bookID>")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  ATELIER_API_URL    Base URL of the API (default: http://localhost:7090)")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
