package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/flightai/csbot/client"
)

// orEmpty keeps --json output an array when the backend sent none.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printMessages(w io.Writer, msgs []client.Message) {
	for _, m := range msgs {
		fmt.Fprintf(w, "%s: %s\n", m.Role, m.Text())
	}
}

func printTrips(w io.Writer, trips []client.Trip) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TRIP ID\tNAME")
	for _, t := range trips {
		fmt.Fprintf(tw, "%s\t%s\n", t.TripID, t.Name)
	}
	return tw.Flush()
}

func printFullTrip(w io.Writer, trip *client.FullTrip) error {
	fmt.Fprintf(w, "Trip: %s\n", trip.Name)
	if len(trip.Flights) == 0 {
		fmt.Fprintln(w, "No flights")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FLIGHT ID\tROUTE\tDEPARTS\tARRIVES\tPRICE\tTICKET\tPAYMENT")
	for _, f := range trip.Flights {
		fmt.Fprintf(tw, "%s\t%s -> %s\t%s\t%s\t%s\t%s\t%s\n",
			f.FlightID, f.FromAirport, f.ToAirport, f.DepartureTime, f.ArrivalTime,
			f.Price, f.TicketType, f.PaymentStatus)
	}
	return tw.Flush()
}

func printQuestions(w io.Writer, qs []client.Question) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "QUESTION ID\tSTATE\tQUESTION\tANSWER")
	for _, q := range qs {
		state := "pending"
		if q.Processed {
			state = "processed"
		}
		answer := "(unanswered)"
		if q.Answer != nil {
			answer = *q.Answer
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", q.QuestionID, state, q.Question, answer)
	}
	return tw.Flush()
}

func printSync(w io.Writer, sr *client.SyncResponse) {
	fmt.Fprintf(w, "Status: %s\n", sr.Status)
	if sr.IngestionJob == nil {
		fmt.Fprintln(w, "No ingestion job")
		return
	}
	printJob(w, sr.IngestionJob)
}

func printJob(w io.Writer, job *client.IngestionJob) {
	fmt.Fprintf(w, "Job %s: %s (knowledge base %s, data source %s, updated %s)\n",
		job.IngestionJobID, job.Status, job.KnowledgeBaseID, job.DataSourceID, job.UpdatedAt)
}
