package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/flightai/csbot/client"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListQuestionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-questions",
		Short: "List knowledge-base questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			start := time.Now()
			qs, err := opts.client.ListQuestions(ctx)
			logResult("list-questions", start, err)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), orEmpty(qs))
			}
			return printQuestions(cmd.OutOrStdout(), qs)
		},
	}
}

func newUpdateQuestionCmd(opts *rootOptions) *cobra.Command {
	var questionID, question, answer string
	var clearQuestion, clearAnswer bool

	cmd := &cobra.Command{
		Use:   "update-question",
		Short: "Edit a question or its answer; unspecified fields are left unchanged",
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload client.UpdateQuestionPayload
			flags := cmd.Flags()
			switch {
			case flags.Changed("question"):
				payload.Question = client.Some(question)
			case clearQuestion:
				payload.Question = client.Null[string]()
			}
			switch {
			case flags.Changed("answer"):
				payload.Answer = client.Some(answer)
			case clearAnswer:
				payload.Answer = client.Null[string]()
			}
			if payload.Question.IsZero() && payload.Answer.IsZero() {
				return errors.New("nothing to update: pass --question, --answer, --clear-question or --clear-answer")
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			start := time.Now()
			err := opts.client.UpdateQuestion(ctx, questionID, payload)
			logResult("update-question", start, err)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Question updated: %s\n", questionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&questionID, "question-id", "", "Question ID (required)")
	cmd.Flags().StringVar(&question, "question", "", "New question text")
	cmd.Flags().StringVar(&answer, "answer", "", "New answer text")
	cmd.Flags().BoolVar(&clearQuestion, "clear-question", false, "Set the question to null")
	cmd.Flags().BoolVar(&clearAnswer, "clear-answer", false, "Set the answer to null")
	_ = cmd.MarkFlagRequired("question-id")
	cmd.MarkFlagsMutuallyExclusive("question", "clear-question")
	cmd.MarkFlagsMutuallyExclusive("answer", "clear-answer")

	return cmd
}

func newSyncKBCmd(opts *rootOptions) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "sync-kb",
		Short: "Start a knowledge-base ingestion",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			start := time.Now()
			sr, err := opts.client.SyncKnowledgeBase(ctx)
			cancel()
			logResult("sync-kb", start, err)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !wait || sr.IngestionJob == nil || sr.IngestionJob.Terminal() {
				if opts.asJSON {
					return printJSON(out, sr)
				}
				printSync(out, sr)
				return nil
			}

			log.Info().Str("ingestion_job_id", sr.IngestionJob.IngestionJobID).Msg("waiting for ingestion to finish")
			// Polling is bounded by CSBOT_POLL_MAX_WAIT, not the per-call timeout.
			start = time.Now()
			job, err := opts.client.AwaitIngestion(cmd.Context())
			logResult("await-ingestion", start, err)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(out, job)
			}
			printJob(out, job)
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the ingestion job finishes")
	return cmd
}

func newSyncStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-status",
		Short: "Show the latest ingestion job",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			start := time.Now()
			sr, err := opts.client.GetSyncStatus(ctx)
			logResult("sync-status", start, err)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), sr)
			}
			printSync(cmd.OutOrStdout(), sr)
			return nil
		},
	}
}
