package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	model "github.com/helphopelive/story-builder/backend/internal/model/session"
)

// StoryRowLabel is the question-id column value of the synthetic trailing
// CSV row carrying the story draft. The row is display-only and not part of
// the answer collection on re-import.
const StoryRowLabel = "Story"

// JSON renders the full session record verbatim; re-parsing it yields the
// original session including the draft.
func JSON(sess model.Session) ([]byte, error) {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	return data, nil
}

// CSV renders one row per answer plus the synthetic story row. Fields
// containing delimiters or quotes get standard quoted-field escaping, so
// embedded quotes and commas survive a round trip.
func CSV(sess model.Session) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"Question ID", "Answer", "Follow-up Answer", "Skipped"}}
	for _, ans := range sess.Answers {
		records = append(records, []string{
			ans.QuestionID,
			ans.Answer,
			ans.FollowUpAnswer,
			strconv.FormatBool(ans.Skipped),
		})
	}
	records = append(records, []string{StoryRowLabel, sess.StoryDraft, "", "false"})

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseCSV reads a tabular export back into an answer collection, dropping
// the synthetic story row. Together with CSV it makes the tabular format
// lossless for answers.
func ParseCSV(data []byte) ([]model.Answer, error) {
	r := csv.NewReader(bytes.NewReader(data))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	answers := make([]model.Answer, 0, len(records))
	for i, record := range records {
		if i == 0 {
			// Header row.
			continue
		}
		if len(record) != 4 {
			return nil, fmt.Errorf("malformed csv row %d: expected 4 fields, got %d", i, len(record))
		}
		if record[0] == StoryRowLabel {
			continue
		}
		skipped, err := strconv.ParseBool(record[3])
		if err != nil {
			return nil, fmt.Errorf("malformed csv row %d: %w", i, err)
		}
		answers = append(answers, model.Answer{
			QuestionID:     record[0],
			Answer:         record[1],
			FollowUpAnswer: record[2],
			Skipped:        skipped,
		})
	}
	return answers, nil
}
