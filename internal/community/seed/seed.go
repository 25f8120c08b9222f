// Package seed generates a starter feed so a fresh instance does not open
// on an empty page.
package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/MyNameIsWhaaat/oceanica/internal/community/model"
)

const (
	firstPostID    = 1000
	firstCommentID = 2000
	maxComments    = 4
)

// Start is the timestamp of the oldest generated post.
var Start = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

var names = []string{
	"Liam Smith", "Olivia Johnson", "Noah Williams", "Emma Brown", "Oliver Jones",
	"Ava Garcia", "Elijah Miller", "Sophia Davis", "William Rodriguez", "Isabella Martinez",
	"James Hernandez", "Charlotte Lopez", "Benjamin Gonzalez", "Amelia Wilson", "Lucas Anderson",
	"Mia Thomas", "Henry Taylor", "Evelyn Moore", "Alexander Jackson", "Harper Martin",
}

var contents = []string{
	"Just got back from a dive trip in the Red Sea. The coral reefs were absolutely breathtaking! We need to protect these underwater wonders.",
	"Has anyone seen the latest documentary about deep-sea exploration? The footage of bioluminescent creatures is mind-blowing!",
	"Participated in a local beach cleanup today. It's heartbreaking to see how much plastic washes ashore. Every little bit helps, though!",
	"I'm trying to switch to a more sustainable lifestyle. Does anyone have recommendations for zero-waste bathroom products?",
	"Whale watching season is here! Saw a pod of humpbacks breaching off the coast today. An unforgettable experience.",
	"Reading a fascinating book about octopus intelligence. They are truly remarkable creatures. What's your favorite marine animal?",
	"The issue of overfishing is deeply concerning. How can we, as consumers, make more responsible seafood choices?",
	"Planning a trip to the Great Barrier Reef next year. Any tips for responsible tourism operators?",
	"The sound of waves is the most calming thing in the world. Where's your favorite beach to relax and unwind?",
	"Working on a school project about the impact of ocean acidification. The threat to shelled organisms is very real.",
	"The diversity of nudibranchs is incredible. They're like tiny, psychedelic jewels of the sea. Post your best macro shots!",
	"Saw a Manta Ray for the first time on my last dive. Majestic is an understatement.",
	"Who else is fascinated by the Mariana Trench? The pressure and darkness down there are extreme, yet life finds a way.",
	"What's one simple change you've made in your daily life to reduce your impact on the oceans?",
}

var comments = []struct{ name, content string }{
	{"EcoWarrior22", "That's awesome! I've been wanting to go there."},
	{"OceanLover", "Totally agree! We must do more."},
	{"DeepThinker", "Great point. I never thought about it that way."},
	{"ReefSeeker", "I saw that too! So inspiring."},
	{"PlasticPatrol", "Thanks for sharing! Very informative."},
	{"DiveMasterDan", "The pictures are amazing! That reminds me of my dive in the Galapagos."},
	{"WhaleWatcher", "We need to protect their migration routes. Ship strikes are a huge threat."},
	{"CuriousCurrent", "Wow, I had no idea! Thanks for the info."},
	{"ScubaSteve", "Incredible shot! What camera setup are you using?"},
	{"FutureLeader", "I'm doing my thesis on this! It's such a critical area of research."},
}

// Posts generates n posts, newest first. The same rnd state yields the same
// feed. Post ids start at 1000 and comment ids at 2000.
func Posts(n int, rnd *rand.Rand) []*model.Post {
	posts := make([]*model.Post, n)
	at := Start
	for i := 0; i < n; i++ {
		body := contents[i%len(contents)]
		p := &model.Post{
			ID:         int64(firstPostID + i),
			Author:     names[i%len(names)],
			AvatarSeed: avatarSeed(i, i),
			Body:       body,
			Category:   Categorize(body),
			Likes:      rnd.IntN(250),
			CreatedAt:  at,
			Comments:   postComments(i, at, rnd),
		}
		posts[n-1-i] = p
		at = at.Add(time.Duration(4+rnd.IntN(8)) * time.Hour)
	}
	return posts
}

func postComments(i int, at time.Time, rnd *rand.Rand) []*model.CommentNode {
	out := []*model.CommentNode{}
	if rnd.Float64() < 0.4 {
		return out
	}
	picks := rnd.Perm(len(comments))[:1+rnd.IntN(maxComments)]
	for j, k := range picks {
		out = append(out, &model.CommentNode{
			ID:         int64(firstCommentID + i*5 + j),
			Author:     comments[k].name,
			AvatarSeed: avatarSeed(i+j*3+5, i),
			Body:       comments[k].content,
			Likes:      rnd.IntN(20),
			CreatedAt:  at.Add(time.Duration(j+1) * time.Hour),
			Replies:    []*model.CommentNode{},
		})
	}
	return out
}

func avatarSeed(k, i int) string {
	return fmt.Sprintf("%s%d", model.AvatarKeywords[k%len(model.AvatarKeywords)], i)
}

// Categorize guesses a category from the words in a post.
func Categorize(body string) model.Category {
	s := strings.ToLower(body)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has("question", "anyone know", "how can we", "any tips"):
		return model.CategoryQA
	case has("photo", "documentary", "shots", "footage", "pictures"):
		return model.CategoryPhotography
	case has("dive", "diving", "scuba", "exploration", "trip"):
		return model.CategoryDiving
	case has("conservation", "cleanup", "plastic", "protect", "sustainable", "overfishing", "acidification"):
		return model.CategoryConservation
	case has("intelligence", "creatures", "species", "ecosystems", "bioluminescent", "nudibranchs"):
		return model.CategoryBiology
	}
	return model.CategoryGeneral
}
