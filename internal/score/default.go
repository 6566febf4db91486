package score

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	// Database is the sqlite file path, "./results.db" when empty.
	Database string

	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	path := s.Database
	if path == "" {
		path = "./results.db"
	}
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists results
	  (
		  id integer not null primary key,
		  score integer,
		  difficulty text,
		  played_at integer
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) Save(r Result) {
	_, err := s.db.Exec(
		"insert into results(score, difficulty, played_at) values(?, ?, ?)",
		r.Score, r.Difficulty, r.PlayedAt.Unix(),
	)
	if nil != err {
		log.Println("unable to save result", err)
	}
}

func (s *DefaultScorer) Load() []Result {
	results := []Result{}
	rows, err := s.db.Query(
		"select score, difficulty, played_at from results order by score desc")
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load results", err)
		return results
	}
	defer rows.Close()
	for rows.Next() {
		var r Result
		var playedAt int64
		if err := rows.Scan(&r.Score, &r.Difficulty, &playedAt); nil != err {
			log.Println("unable to scan result", err)
			continue
		}
		r.PlayedAt = time.Unix(playedAt, 0)
		results = append(results, r)
	}
	return results
}
