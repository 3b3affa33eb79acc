package web

import "html/template"

type pageData struct {
	Rooms        template.HTML
	Reservations template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Réservation de salles</title>
</head>
<body>
<h1>Réservation de salles</h1>

<h2>Salles</h2>
<table id="roomList">
{{.Rooms}}
</table>

<h3>Ajouter une salle</h3>
<form id="addRoomForm" method="post" action="/rooms">
<label for="roomName">Nom</label>
<input type="text" id="roomName" name="roomName" required>
<label for="roomCapacity">Capacité</label>
<input type="number" id="roomCapacity" name="roomCapacity" required>
<button type="submit">Ajouter</button>
</form>

<h2>Réservations</h2>
<table id="reservationList">
{{.Reservations}}
</table>

<h3>Créer une réservation</h3>
<form id="addReservationForm" method="post" action="/reservations">
<label for="reservationRoomId">ID Salle</label>
<input type="number" id="reservationRoomId" name="reservationRoomId" required>
<label for="reservationDate">Date</label>
<input type="date" id="reservationDate" name="reservationDate" required>
<label for="reservationStartTime">Heure de début</label>
<input type="time" id="reservationStartTime" name="reservationStartTime" required>
<label for="reservationEndTime">Heure de fin</label>
<input type="time" id="reservationEndTime" name="reservationEndTime" required>
<button type="submit">Créer</button>
</form>

<p>
<a href="/reservations/export?format=json">Exporter en JSON</a>
<a href="/reservations/export?format=csv">Exporter en CSV</a>
</p>
</body>
</html>
`))
