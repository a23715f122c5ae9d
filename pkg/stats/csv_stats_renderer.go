package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type StatsRenderer interface {
	RenderStatistics(statistics Statistics) (string, error)
}

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

func (t *CsvStatsRendererImpl) RenderStatistics(statistics Statistics) (string, error) {
	data := make([][]string, 0, 8+len(statistics.DailyProgress)+len(statistics.ActivityBreakdown))

	data = append(data,
		[]string{"Total today (min)", strconv.Itoa(statistics.TotalTimeToday)},
		[]string{"Total this week (min)", strconv.Itoa(statistics.TotalTimeWeek)},
		[]string{"Total this month (min)", strconv.Itoa(statistics.TotalTimeMonth)},
		[]string{"Streak (days)", strconv.Itoa(statistics.StreakDays)},
		[]string{"Goals completed today", strconv.Itoa(statistics.CompletedGoalsToday)},
		[]string{},
		[]string{"Date", "Minutes"},
	)
	for _, entry := range statistics.DailyProgress {
		data = append(data, []string{entry.Date, strconv.Itoa(entry.TotalMinutes)})
	}

	data = append(data,
		[]string{},
		[]string{"Activity", "Minutes", "Percentage"},
	)
	for _, entry := range statistics.ActivityBreakdown {
		data = append(data, []string{
			entry.ActivityName,
			strconv.Itoa(entry.TotalMinutes),
			strconv.Itoa(entry.Percentage),
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
