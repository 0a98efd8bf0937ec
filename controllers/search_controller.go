package controllers

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"phongtro/dto"
	"phongtro/models"
	"phongtro/response"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

var priceQueryRe = regexp.MustCompile(`(\d+)\s*(trieu|tr)`)

// extractPriceFromQuery bắt số triệu trong câu hỏi, trả về -1 nếu không có
func extractPriceFromQuery(query string) int {
	match := priceQueryRe.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	millions, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return millions * 1000000
}

// Tạo danh sách khu vực duy nhất cho closestmatch
func prepareUniqueAreas(rooms []models.Room) []string {
	uniqueValues := make(map[string]bool)

	for _, room := range rooms {
		if room.Area != "" {
			uniqueValues[normalizeInput(room.Area)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho phòng
func calculateRoomScore(query string, room models.Room, cmArea *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if cmArea.Closest(normalizedQuery) == normalizeInput(room.Area) {
		score += 13
	}

	if strings.Contains(normalizedQuery, normalizeInput(room.Name)) ||
		calculateSimilarity(normalizedQuery, normalizeInput(room.Name)) > 0.7 {
		score += 20
	}

	if price := extractPriceFromQuery(normalizedQuery); price != -1 {
		// coi như khớp giá khi lệch không quá một triệu
		diff := room.Price - price
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1000000 {
			score += 15
		}
	}

	score += calculateAmenityScore(normalizedQuery, room.DecodeAmenities())

	return score
}

func calculateAmenityScore(query string, amenities []string) int {
	maxAmenityScore := 12
	amenityScore := 0

	for _, amenity := range amenities {
		normalizedAmenity := normalizeInput(amenity)
		similarity := calculateSimilarity(query, normalizedAmenity)
		if similarity > 0.7 || strings.Contains(query, normalizedAmenity) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	return amenityScore
}

// filterAndScoreRooms chấm điểm từng phòng trên goroutine riêng, giữ
// phòng có điểm dương và xếp theo điểm giảm dần
func filterAndScoreRooms(query string, rooms []models.Room, cmArea *closestmatch.ClosestMatch) []dto.ScoredRoom {
	var scored []dto.ScoredRoom
	scoreCh := make(chan dto.ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := calculateRoomScore(query, room, cmArea)
			if score > 0 {
				scoreCh <- dto.ScoredRoom{
					Room:  toRoomResponse(room),
					Score: score,
				}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredRoom := range scoreCh {
		scored = append(scored, scoredRoom)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// SearchRooms tìm phòng gần đúng theo câu hỏi tự nhiên: khu vực, tên,
// mức giá "x triệu" và tiện ích đều góp điểm
func SearchRooms(c *gin.Context) {
	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	rooms, err := fetchAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	cmArea := createMatcher(prepareUniqueAreas(rooms))
	scored := filterAndScoreRooms(query, rooms, cmArea)

	page, limit := parsePageQuery(c)
	window := paginate(scored, page, limit)

	response.SuccessWithPagination(c, window, page, limit, len(scored))
}
