package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = "http://localhost:8888"

func main() {
	if v := os.Getenv("SEED_BASE_URL"); v != "" {
		baseURL = v
	}
	gofakeit.Seed(time.Now().UnixNano())

	// A handful of fake users to attribute posts and likes to.
	users := make([]string, 5)
	for i := range users {
		users[i] = gofakeit.Username()
	}

	var postIDs []uint
	for i := 0; i < 15; i++ {
		id := createPost(users[gofakeit.Number(0, len(users)-1)])
		if id != 0 {
			postIDs = append(postIDs, id)
		}
	}

	for _, id := range postIDs {
		for _, u := range users {
			if gofakeit.Bool() {
				likePost(id, u)
			}
		}
	}

	listPosts(users[0])
}

func createPost(userID string) uint {
	payload := map[string]any{
		"content": gofakeit.Sentence(gofakeit.Number(4, 14)),
		"userId":  userID,
	}
	if gofakeit.Bool() {
		payload["imageUrl"] = gofakeit.ImageURL(640, 480)
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(baseURL+"/api/posts", "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("create post: %v", err)
		return 0
	}
	defer resp.Body.Close()

	var created struct {
		ID uint `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Printf("create post decode: %v", err)
		return 0
	}
	log.Printf("created post %d (status %d)", created.ID, resp.StatusCode)
	return created.ID
}

func likePost(postID uint, userID string) {
	body, _ := json.Marshal(map[string]string{"userId": userID})
	url := fmt.Sprintf("%s/api/posts/%d/like", baseURL, postID)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("like post %d: %v", postID, err)
		return
	}
	defer resp.Body.Close()
	log.Printf("liked post %d as %s (status %d)", postID, userID, resp.StatusCode)
}

func listPosts(userID string) {
	resp, err := http.Get(fmt.Sprintf("%s/api/posts?userId=%s", baseURL, userID))
	if err != nil {
		log.Printf("list posts: %v", err)
		return
	}
	defer resp.Body.Close()

	var posts []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		log.Printf("list posts decode: %v", err)
		return
	}
	log.Printf("feed has %d posts", len(posts))
}
