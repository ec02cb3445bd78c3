package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/courtside/attendbot/attendance"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type pollRecord struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	PollDate  string `gorm:"uniqueIndex"`
	Creator   string
}

// voteRecord deliberately has no DeletedAt: votes are append/retire,
// and a soft-deleted row would still occupy the unique (poll_date,
// user_id) slot and block the user's next vote.
type voteRecord struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	PollDate    string `gorm:"uniqueIndex:vote_idx"`
	UserId      string `gorm:"uniqueIndex:vote_idx"`
	Choice      string
	Weight      int
	SubmittedAt time.Time
}

// Store is the database-backed attendance.Store. The auto-increment row
// id doubles as the monotonic insertion sequence the allocator uses to
// break submission-time ties.
type Store struct {
	db *gorm.DB
}

// Open wraps a database dialect in a Store and runs migrations. Errors
// are translated, so unique-index violations surface as
// gorm.ErrDuplicatedKey whatever the backend.
func Open(dialector gorm.Dialector, debug bool) (*Store, error) {
	logMode := logger.Warn
	if debug {
		logMode = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&pollRecord{}, &voteRecord{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Connect opens the mysql-backed store.
func Connect(connString string, debug bool) (*Store, error) {
	store, err := Open(mysql.Open(connString), debug)
	if err != nil {
		return nil, err
	}

	sqlDb, err := store.db.DB()
	if err == nil {
		sqlDb.SetConnMaxLifetime(time.Second * 10)
		sqlDb.SetMaxIdleConns(0)
		sqlDb.SetMaxOpenConns(10)
	}

	return store, nil
}

func (s *Store) CreatePoll(date, creator string, ts time.Time) error {
	// The unique index decides duplicates, so two processes racing the
	// same date cannot both create the poll.
	err := s.db.Create(&pollRecord{PollDate: date, Creator: creator, CreatedAt: ts}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return attendance.ErrDuplicatePoll
	}
	return err
}

func (s *Store) FindPoll(date string) (*attendance.Poll, error) {
	record := &pollRecord{}
	err := s.db.Where(&pollRecord{PollDate: date}).First(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendance.ErrPollNotFound
		}
		return nil, err
	}

	return &attendance.Poll{
		Date:      record.PollDate,
		Creator:   record.Creator,
		CreatedAt: record.CreatedAt,
	}, nil
}

func (s *Store) ListVotes(date string) ([]attendance.Vote, error) {
	var records []voteRecord
	err := s.db.Where(&voteRecord{PollDate: date}).Order("id").Find(&records).Error
	if err != nil {
		return nil, err
	}

	votes := make([]attendance.Vote, 0, len(records))
	for _, r := range records {
		choice, err := attendance.ParseChoice(r.Choice)
		if err != nil {
			return nil, fmt.Errorf("vote row %d: %w", r.ID, err)
		}
		votes = append(votes, attendance.Vote{
			PollDate:    r.PollDate,
			User:        r.UserId,
			Choice:      choice,
			Weight:      choice.Weight(),
			SubmittedAt: r.SubmittedAt,
			Seq:         uint64(r.ID),
		})
	}
	return votes, nil
}

func (s *Store) InsertVote(v *attendance.Vote) error {
	record := &voteRecord{
		PollDate:    v.PollDate,
		UserId:      v.User,
		Choice:      v.Choice.Label(),
		Weight:      v.Weight,
		SubmittedAt: v.SubmittedAt,
	}
	if err := s.db.Create(record).Error; err != nil {
		return err
	}
	v.Seq = uint64(record.ID)
	return nil
}

func (s *Store) DeleteVotes(user, date string) (int64, error) {
	result := s.db.Where(&voteRecord{PollDate: date, UserId: user}).Delete(&voteRecord{})
	return result.RowsAffected, result.Error
}

func (s *Store) ClearVotes(date string) (int64, error) {
	result := s.db.Where(&voteRecord{PollDate: date}).Delete(&voteRecord{})
	return result.RowsAffected, result.Error
}
