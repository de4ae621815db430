// Command inspect dumps user and chatbox records from a badger store as
// a table. Run it against a live server's store with -db.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/vmihailenco/msgpack/v4"
)

// Mirrors of the repository disk shapes, decoded by field name.
type userRecord struct {
	ID        int64
	Username  string
	Roles     []string
	Online    bool
	Banned    bool
	CreatedAt int64
}

type messageRecord struct {
	ID       int64
	SenderID int64
	Content  string
	Hidden   bool
}

type chatBoxRecord struct {
	ID           int64
	Name         string
	Participants []int64
	Messages     []messageRecord
	Hidden       bool
}

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "", "Restrict to a key prefix (user: or box:)")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Name", "Detail", "Flags"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			// Username index and sequence bookkeeping are noise here
			if strings.HasPrefix(key, "idx:") || strings.HasPrefix(key, "seq:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				switch {
				case strings.HasPrefix(key, "user:"):
					appendUser(table, key, v)
				case strings.HasPrefix(key, "box:"):
					appendChatBox(table, key, v)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("  ====== chatbox-lab store ======"))
	table.Render()
}

func appendUser(table *tablewriter.Table, key string, val []byte) {
	var record userRecord
	if err := msgpack.Unmarshal(val, &record); err != nil {
		fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
		return
	}

	var flags []string
	if record.Online {
		flags = append(flags, color.Green.Render("online"))
	}
	if record.Banned {
		flags = append(flags, color.Red.Render("banned"))
	}

	table.Append([]string{
		key,
		"USER",
		record.Username,
		fmt.Sprintf("roles=%s created=%s",
			strings.Join(record.Roles, ","),
			time.Unix(0, record.CreatedAt).UTC().Format(time.DateOnly)),
		strings.Join(flags, " "),
	})
}

func appendChatBox(table *tablewriter.Table, key string, val []byte) {
	var record chatBoxRecord
	if err := msgpack.Unmarshal(val, &record); err != nil {
		fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
		return
	}

	hiddenCount := 0
	for _, m := range record.Messages {
		if m.Hidden {
			hiddenCount++
		}
	}

	flags := ""
	if record.Hidden {
		flags = color.Yellow.Render("hidden")
	}

	table.Append([]string{
		key,
		"CHATBOX",
		record.Name,
		fmt.Sprintf("participants=%d messages=%d hidden_messages=%d",
			len(record.Participants), len(record.Messages), hiddenCount),
		flags,
	})
}
