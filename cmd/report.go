package cmd

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderReport(w io.Writer, r RunReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Crawl summary")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	t.AppendRow(table.Row{"Start URL", r.StartURL})
	t.AppendRow(table.Row{"Output", r.Output})
	if r.RunID != "" {
		t.AppendRow(table.Row{"Archive run", r.RunID})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"Articles accepted", r.Articles})
	t.AppendRow(table.Row{"Pages fetched", r.Stats.Fetched})
	t.AppendRow(table.Row{"Fetch failures", r.Stats.Failed})
	t.AppendRow(table.Row{"Hub pages", r.Stats.Hubs})
	t.AppendRow(table.Row{"Salvaged pages", r.Stats.Salvaged})
	t.AppendRow(table.Row{"Skipped (filtered)", r.Stats.Filtered})
	t.AppendRow(table.Row{"Seed links", r.Stats.Seeded})
	t.AppendRow(table.Row{"Links enqueued", r.Stats.Enqueued})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Elapsed", r.Elapsed.Round(time.Millisecond).String()})
	if r.Interrupted {
		t.AppendRow(table.Row{"Status", "interrupted"})
	} else {
		t.AppendRow(table.Row{"Status", "complete"})
	}

	t.Render()
}
